// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/linkdeck/internal/platform/database/schema"
	"github.com/taibuivan/linkdeck/internal/platform/dberr"
	"github.com/taibuivan/linkdeck/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed group store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// scan reads one row in [schema.GroupsTable.Columns] order.
func scan(row pgx.Row, group *Group) error {
	return row.Scan(
		&group.ID, &group.Name, &group.Slug, &group.Icon,
		&group.IsPublic, &group.OrderNum, &group.CreatedAt, &group.UpdatedAt,
	)
}

// # Group Retrieval

/*
List returns every group in display order.

Parameters:
  - context: context.Context

Returns:
  - []*Group: Groups ordered by order_num, id
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s, %s`,
		schema.Groups.Select(), schema.Groups.Table, schema.Groups.OrderNum, schema.Groups.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_groups")
	}
	defer rows.Close()

	groups := []*Group{}
	for rows.Next() {
		group := &Group{}
		if err := scan(rows, group); err != nil {
			return nil, dberr.Wrap(err, "scan_group")
		}
		groups = append(groups, group)
	}

	return groups, dberr.Wrap(rows.Err(), "list_groups")
}

/*
FindByID retrieves a single group by its primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Group: Hydrated entity
  - error: dberr.ErrNotFound if missing
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Groups.Select(), schema.Groups.Table, schema.Groups.ID)

	group := &Group{}
	if err := scan(repository.db.QueryRow(context, query, id), group); err != nil {
		return nil, dberr.Wrap(err, "get_group_by_id")
	}
	return group, nil
}

// NextOrderNum returns MAX(order_num)+1, or 0 for an empty table.
func (repository *PostgresRepository) NextOrderNum(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX(%s) + 1, 0) FROM %s`,
		schema.Groups.OrderNum, schema.Groups.Table)

	var next int
	if err := repository.db.QueryRow(context, query).Scan(&next); err != nil {
		return 0, dberr.Wrap(err, "next_group_order")
	}
	return next, nil
}

// # Group Mutation

/*
Create inserts a new group record.

Parameters:
  - context: context.Context
  - group: *Group (ID and timestamps are filled in)

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, group *Group) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s`,
		schema.Groups.Table,
		schema.Groups.Name, schema.Groups.Slug, schema.Groups.Icon, schema.Groups.IsPublic, schema.Groups.OrderNum,
		schema.Groups.ID, schema.Groups.CreatedAt, schema.Groups.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		group.Name, group.Slug, group.Icon, group.IsPublic, group.OrderNum,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)

	return dberr.Wrap(err, "create_group")
}

/*
Update writes the mutable columns of a group.

Parameters:
  - context: context.Context
  - group: *Group

Returns:
  - error: dberr.ErrNotFound if the row is gone
*/
func (repository *PostgresRepository) Update(context context.Context, group *Group) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.Groups.Table,
		schema.Groups.Name, schema.Groups.Slug, schema.Groups.Icon, schema.Groups.IsPublic, schema.Groups.OrderNum,
		schema.Groups.UpdatedAt,
		schema.Groups.ID,
		schema.Groups.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		group.ID, group.Name, group.Slug, group.Icon, group.IsPublic, group.OrderNum,
	).Scan(&group.UpdatedAt)

	return dberr.Wrap(err, "update_group")
}

/*
Delete removes a group. Its sites are removed by ON DELETE CASCADE.

Returns:
  - error: dberr.ErrNotFound if nothing was deleted
*/
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Groups.Table, schema.Groups.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_group")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
