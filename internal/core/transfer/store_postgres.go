// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package transfer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/linkdeck/internal/platform/database/schema"
	"github.com/taibuivan/linkdeck/internal/platform/dberr"
	"github.com/taibuivan/linkdeck/internal/platform/postgres"
	"github.com/taibuivan/linkdeck/pkg/slug"
)

// PostgresImporter writes documents inside one transaction.
type PostgresImporter struct {
	db postgres.DB
}

// NewPostgresImporter constructs a PostgreSQL backed importer.
func NewPostgresImporter(db postgres.DB) *PostgresImporter {
	return &PostgresImporter{db: db}
}

/*
Import inserts every group and site of the document.

Description: Runs in one transaction via [postgres.InTx]. In replace mode the
existing groups are deleted first, taking their sites with them.

Parameters:
  - context: context.Context
  - document: Document (already validated)
  - mode: Mode

Returns:
  - Summary: Rows created
  - error: Any failure; nothing is written in that case
*/
func (importer *PostgresImporter) Import(context context.Context, document Document, mode Mode) (Summary, error) {
	insertGroup := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`,
		schema.Groups.Table,
		schema.Groups.Name, schema.Groups.Slug, schema.Groups.Icon, schema.Groups.IsPublic, schema.Groups.OrderNum,
		schema.Groups.ID,
	)
	insertSite := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.Sites.Table,
		schema.Sites.GroupID, schema.Sites.Name, schema.Sites.URL, schema.Sites.Icon,
		schema.Sites.Description, schema.Sites.Notes, schema.Sites.IsPublic, schema.Sites.OrderNum,
	)

	var summary Summary

	err := postgres.InTx(context, importer.db, func(transaction pgx.Tx) error {
		if mode == ModeReplace {
			if _, err := transaction.Exec(context, fmt.Sprintf(`DELETE FROM %s`, schema.Groups.Table)); err != nil {
				return err
			}
		}

		for _, group := range document.Groups {
			var groupID int64
			err := transaction.QueryRow(context, insertGroup,
				group.Name, slug.FromOr(group.Name, "group"), group.Icon, group.IsPublic, group.OrderNum,
			).Scan(&groupID)
			if err != nil {
				return err
			}
			summary.Groups++

			for _, site := range group.Sites {
				_, err := transaction.Exec(context, insertSite,
					groupID, site.Name, site.URL, site.Icon,
					site.Description, site.Notes, site.IsPublic, site.OrderNum,
				)
				if err != nil {
					return err
				}
				summary.Sites++
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, dberr.Wrap(err, "import_board")
	}

	return summary, nil
}
