// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tooltag

import (
	"context"
	"fmt"

	"github.com/taibuivan/toolshelf/internal/platform/database/schema"
	"github.com/taibuivan/toolshelf/internal/platform/dberr"
	"github.com/taibuivan/toolshelf/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.DBTX
}

func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = fmt.Sprintf(`%s, %s, %s, %s, %s`,
	schema.CoreToolTag.ID, schema.CoreToolTag.ToolID, schema.CoreToolTag.TagID,
	schema.CoreToolTag.ToolName, schema.CoreToolTag.TagName)

func scan(row interface{ Scan(dest ...any) error }, association *ToolTag) error {
	return row.Scan(&association.ID, &association.ToolID, &association.TagID, &association.ToolName, &association.TagName)
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*ToolTag, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CoreToolTag.Table)
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		selectColumns, schema.CoreToolTag.Table, schema.CoreToolTag.ID)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}
	defer rows.Close()

	associations := make([]*ToolTag, 0)
	for rows.Next() {
		association := &ToolTag{}
		if err := scan(rows, association); err != nil {
			return nil, 0, dberr.Wrap(err, resourceName)
		}
		associations = append(associations, association)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}

	return associations, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*ToolTag, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CoreToolTag.Table, schema.CoreToolTag.ID)

	association := &ToolTag{}
	if err := scan(repository.db.QueryRow(context, query, id), association); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return association, nil
}

func (repository *PostgresRepository) Create(context context.Context, association *ToolTag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		schema.CoreToolTag.Table,
		schema.CoreToolTag.ToolID, schema.CoreToolTag.TagID, schema.CoreToolTag.ToolName, schema.CoreToolTag.TagName,
		schema.CoreToolTag.ID,
	)

	err := repository.db.QueryRow(context, query,
		association.ToolID, association.TagID, association.ToolName, association.TagName,
	).Scan(&association.ID)
	return dberr.Wrap(err, resourceName)
}

func (repository *PostgresRepository) Update(context context.Context, association *ToolTag) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		schema.CoreToolTag.Table,
		schema.CoreToolTag.ToolID, schema.CoreToolTag.TagID, schema.CoreToolTag.ToolName, schema.CoreToolTag.TagName,
		schema.CoreToolTag.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		association.ID, association.ToolID, association.TagID, association.ToolName, association.TagName,
	)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}

	if cmd.RowsAffected() == 0 {
		return ErrToolTagNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreToolTag.Table, schema.CoreToolTag.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}

	if cmd.RowsAffected() == 0 {
		return ErrToolTagNotFound
	}
	return nil
}
