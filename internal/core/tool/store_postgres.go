// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

import (
	"context"
	"fmt"

	"github.com/taibuivan/toolshelf/internal/platform/database/schema"
	"github.com/taibuivan/toolshelf/internal/platform/dberr"
	"github.com/taibuivan/toolshelf/internal/platform/postgres"
)

// PostgresRepository implements [Repository] over core.tool.
type PostgresRepository struct {
	db postgres.TxDB
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db postgres.TxDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	selectColumns = fmt.Sprintf(`%s, %s, %s`, schema.CoreTool.ID, schema.CoreTool.Name, schema.CoreTool.CreatedAt)

	insertQuery = fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s, %s`,
		schema.CoreTool.Table, schema.CoreTool.Name, schema.CoreTool.ID, schema.CoreTool.CreatedAt)
)

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Tool, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CoreTool.Table)
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		selectColumns, schema.CoreTool.Table, schema.CoreTool.ID)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}
	defer rows.Close()

	tools := make([]*Tool, 0)
	for rows.Next() {
		tool := &Tool{}
		if err := rows.Scan(&tool.ID, &tool.Name, &tool.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, resourceName)
		}
		tools = append(tools, tool)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}

	return tools, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Tool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CoreTool.Table, schema.CoreTool.ID)

	tool := &Tool{}
	err := repository.db.QueryRow(context, query, id).Scan(&tool.ID, &tool.Name, &tool.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}

	return tool, nil
}

func (repository *PostgresRepository) Create(context context.Context, tool *Tool) error {
	err := repository.db.QueryRow(context, insertQuery, tool.Name).Scan(&tool.ID, &tool.CreatedAt)
	return dberr.Wrap(err, resourceName)
}

/*
CreateMany inserts every tool inside one transaction.

Description: Either all rows are committed or none is; a duplicate name
anywhere in the batch rolls back the rows inserted before it.

Parameters:
  - context: context.Context
  - tools: []*Tool (IDs and timestamps are filled in on success)

Returns:
  - error: Conflict on duplicates, Internal on connectivity errors
*/
func (repository *PostgresRepository) CreateMany(context context.Context, tools []*Tool) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to begin transaction: %w", err), resourceName)
	}
	defer transaction.Rollback(context)

	for _, tool := range tools {
		if err := transaction.QueryRow(context, insertQuery, tool.Name).Scan(&tool.ID, &tool.CreatedAt); err != nil {
			return dberr.Wrap(err, resourceName)
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to commit tools: %w", err), resourceName)
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, tool *Tool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 RETURNING %s`,
		schema.CoreTool.Table, schema.CoreTool.Name, schema.CoreTool.ID, schema.CoreTool.CreatedAt)

	err := repository.db.QueryRow(context, query, tool.ID, tool.Name).Scan(&tool.CreatedAt)
	return dberr.Wrap(err, resourceName)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreTool.Table, schema.CoreTool.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}

	if tag.RowsAffected() == 0 {
		return ErrToolNotFound
	}
	return nil
}
