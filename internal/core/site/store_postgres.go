// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/linkdeck/internal/platform/database/schema"
	"github.com/taibuivan/linkdeck/internal/platform/dberr"
	"github.com/taibuivan/linkdeck/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed site store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Scan reads one row in [schema.SitesTable.Columns] order.
func Scan(row pgx.Row, site *Site) error {
	return row.Scan(
		&site.ID, &site.GroupID, &site.Name, &site.URL, &site.Icon, &site.Description,
		&site.Notes, &site.IsPublic, &site.OrderNum, &site.CreatedAt, &site.UpdatedAt,
	)
}

// # Site Retrieval

/*
List returns sites, optionally restricted to one group.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - []*Site: Sites ordered by group_id, order_num, id
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Site, error) {
	var queryBuilder strings.Builder
	fmt.Fprintf(&queryBuilder, `SELECT %s FROM %s`, schema.Sites.Select(), schema.Sites.Table)

	args := []any{}
	if filter.GroupID != nil {
		fmt.Fprintf(&queryBuilder, ` WHERE %s = $1`, schema.Sites.GroupID)
		args = append(args, *filter.GroupID)
	}

	fmt.Fprintf(&queryBuilder, ` ORDER BY %s, %s, %s`, schema.Sites.GroupID, schema.Sites.OrderNum, schema.Sites.ID)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sites")
	}
	defer rows.Close()

	sites := []*Site{}
	for rows.Next() {
		site := &Site{}
		if err := Scan(rows, site); err != nil {
			return nil, dberr.Wrap(err, "scan_site")
		}
		sites = append(sites, site)
	}

	return sites, dberr.Wrap(rows.Err(), "list_sites")
}

// FindByID retrieves a single site by its primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Site, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Sites.Select(), schema.Sites.Table, schema.Sites.ID)

	site := &Site{}
	if err := Scan(repository.db.QueryRow(context, query, id), site); err != nil {
		return nil, dberr.Wrap(err, "get_site_by_id")
	}
	return site, nil
}

// NextOrderNum returns MAX(order_num)+1 within the group, or 0 for an empty group.
func (repository *PostgresRepository) NextOrderNum(context context.Context, groupID int64) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX(%s) + 1, 0) FROM %s WHERE %s = $1`,
		schema.Sites.OrderNum, schema.Sites.Table, schema.Sites.GroupID)

	var next int
	if err := repository.db.QueryRow(context, query, groupID).Scan(&next); err != nil {
		return 0, dberr.Wrap(err, "next_site_order")
	}
	return next, nil
}

// # Site Mutation

/*
Create inserts a new site record.

Parameters:
  - context: context.Context
  - site: *Site (ID and timestamps are filled in)

Returns:
  - error: Unprocessable when group_id references no group
*/
func (repository *PostgresRepository) Create(context context.Context, site *Site) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s, %s`,
		schema.Sites.Table,
		schema.Sites.GroupID, schema.Sites.Name, schema.Sites.URL, schema.Sites.Icon,
		schema.Sites.Description, schema.Sites.Notes, schema.Sites.IsPublic, schema.Sites.OrderNum,
		schema.Sites.ID, schema.Sites.CreatedAt, schema.Sites.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		site.GroupID, site.Name, site.URL, site.Icon,
		site.Description, site.Notes, site.IsPublic, site.OrderNum,
	).Scan(&site.ID, &site.CreatedAt, &site.UpdatedAt)

	return dberr.Wrap(err, "create_site")
}

// Update writes the mutable columns of a site.
func (repository *PostgresRepository) Update(context context.Context, site *Site) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.Sites.Table,
		schema.Sites.GroupID, schema.Sites.Name, schema.Sites.URL, schema.Sites.Icon,
		schema.Sites.Description, schema.Sites.Notes, schema.Sites.IsPublic, schema.Sites.OrderNum,
		schema.Sites.UpdatedAt,
		schema.Sites.ID,
		schema.Sites.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		site.ID, site.GroupID, site.Name, site.URL, site.Icon,
		site.Description, site.Notes, site.IsPublic, site.OrderNum,
	).Scan(&site.UpdatedAt)

	return dberr.Wrap(err, "update_site")
}

// Delete removes a site; dberr.ErrNotFound if nothing was deleted.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Sites.Table, schema.Sites.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_site")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
