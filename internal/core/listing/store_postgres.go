// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"context"
	"fmt"

	"github.com/taibuivan/linkdeck/internal/platform/database/schema"
	"github.com/taibuivan/linkdeck/internal/platform/dberr"
	"github.com/taibuivan/linkdeck/internal/platform/postgres"
)

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore constructs a PostgreSQL backed listing store.
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

/*
PublicGroups loads public groups, then the public sites of those groups.

Description: Two ordered queries; sites are attached to their group in
memory so that a group without public sites still appears with an empty list.

Returns:
  - []PublicGroup: Ordered by order_num, id; sites likewise
  - error: Database retrieval failures
*/
func (store *PostgresStore) PublicGroups(context context.Context) ([]PublicGroup, error) {
	groupQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s ORDER BY %s, %s`,
		schema.Groups.ID, schema.Groups.Name, schema.Groups.Slug, schema.Groups.Icon, schema.Groups.OrderNum,
		schema.Groups.Table, schema.Groups.IsPublic,
		schema.Groups.OrderNum, schema.Groups.ID,
	)

	rows, err := store.db.Query(context, groupQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_public_groups")
	}

	groups := []PublicGroup{}
	positions := map[int64]int{}
	for rows.Next() {
		group := PublicGroup{Sites: []PublicSite{}}
		if err := rows.Scan(&group.ID, &group.Name, &group.Slug, &group.Icon, &group.OrderNum); err != nil {
			rows.Close()
			return nil, dberr.Wrap(err, "scan_public_group")
		}
		positions[group.ID] = len(groups)
		groups = append(groups, group)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_public_groups")
	}

	if len(groups) == 0 {
		return groups, nil
	}

	siteQuery := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s
		FROM %s s
		JOIN %s g ON g.%s = s.%s
		WHERE s.%s AND g.%s
		ORDER BY s.%s, s.%s, s.%s`,
		schema.Sites.ID, schema.Sites.GroupID, schema.Sites.Name, schema.Sites.URL,
		schema.Sites.Icon, schema.Sites.Description, schema.Sites.OrderNum,
		schema.Sites.Table,
		schema.Groups.Table, schema.Groups.ID, schema.Sites.GroupID,
		schema.Sites.IsPublic, schema.Groups.IsPublic,
		schema.Sites.GroupID, schema.Sites.OrderNum, schema.Sites.ID,
	)

	rows, err = store.db.Query(context, siteQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_public_sites")
	}
	defer rows.Close()

	for rows.Next() {
		var site PublicSite
		var groupID int64
		if err := rows.Scan(&site.ID, &groupID, &site.Name, &site.URL, &site.Icon, &site.Description, &site.OrderNum); err != nil {
			return nil, dberr.Wrap(err, "scan_public_site")
		}
		if position, ok := positions[groupID]; ok {
			groups[position].Sites = append(groups[position].Sites, site)
		}
	}

	return groups, dberr.Wrap(rows.Err(), "list_public_sites")
}
