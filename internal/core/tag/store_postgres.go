// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"

	"github.com/taibuivan/toolshelf/internal/platform/database/schema"
	"github.com/taibuivan/toolshelf/internal/platform/dberr"
	"github.com/taibuivan/toolshelf/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.TxDB
}

func NewPostgresRepository(db postgres.TxDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	selectColumns = fmt.Sprintf(`%s, %s, %s, %s`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.Slug, schema.CoreTag.CreatedAt)

	insertQuery = fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		schema.CoreTag.Table, schema.CoreTag.Name, schema.CoreTag.Slug, schema.CoreTag.ID, schema.CoreTag.CreatedAt)
)

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Tag, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CoreTag.Table)
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		selectColumns, schema.CoreTag.Table, schema.CoreTag.Name)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, resourceName)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName)
	}

	return tags, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CoreTag.Table, schema.CoreTag.ID)

	t := &Tag{}
	if err := repository.db.QueryRow(context, query, id).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return t, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.CoreTag.Table, schema.CoreTag.Slug)

	t := &Tag{}
	if err := repository.db.QueryRow(context, query, slug).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return t, nil
}

func (repository *PostgresRepository) Create(context context.Context, t *Tag) error {
	err := repository.db.QueryRow(context, insertQuery, t.Name, t.Slug).Scan(&t.ID, &t.CreatedAt)
	return dberr.Wrap(err, resourceName)
}

// CreateMany inserts every tag in one transaction; a slug collision rolls back the batch.
func (repository *PostgresRepository) CreateMany(context context.Context, tags []*Tag) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to begin transaction: %w", err), resourceName)
	}
	defer transaction.Rollback(context)

	for _, t := range tags {
		if err := transaction.QueryRow(context, insertQuery, t.Name, t.Slug).Scan(&t.ID, &t.CreatedAt); err != nil {
			return dberr.Wrap(err, resourceName)
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to commit tags: %w", err), resourceName)
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, t *Tag) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1 RETURNING %s`,
		schema.CoreTag.Table, schema.CoreTag.Name, schema.CoreTag.Slug, schema.CoreTag.ID, schema.CoreTag.CreatedAt)

	err := repository.db.QueryRow(context, query, t.ID, t.Name, t.Slug).Scan(&t.CreatedAt)
	return dberr.Wrap(err, resourceName)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreTag.Table, schema.CoreTag.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}

	if cmd.RowsAffected() == 0 {
		return ErrTagNotFound
	}
	return nil
}
