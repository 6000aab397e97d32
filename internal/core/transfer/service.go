// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/linkdeck/internal/core/group"
	"github.com/taibuivan/linkdeck/internal/core/site"
	"github.com/taibuivan/linkdeck/internal/platform/ctxutil"
	"github.com/taibuivan/linkdeck/internal/platform/validate"
)

// GroupSource lists groups for export.
type GroupSource interface {
	List(context context.Context) ([]*group.Group, error)
}

// SiteSource lists sites for export.
type SiteSource interface {
	List(context context.Context, filter site.Filter) ([]*site.Site, error)
}

// Importer writes a validated document atomically.
type Importer interface {
	Import(context context.Context, document Document, mode Mode) (Summary, error)
}

// Service builds and applies transfer documents.
type Service struct {
	groups   GroupSource
	sites    SiteSource
	importer Importer
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a transfer [Service].
func NewService(groups GroupSource, sites SiteSource, importer Importer, logger *slog.Logger) *Service {
	return &Service{
		groups:   groups,
		sites:    sites,
		importer: importer,
		logger:   logger,
		now:      time.Now,
	}
}

/*
Export snapshots the board.

Returns:
  - Document: Every group in display order with its sites
  - error: Retrieval failures
*/
func (service *Service) Export(context context.Context) (Document, error) {
	groups, err := service.groups.List(context)
	if err != nil {
		return Document{}, err
	}
	sites, err := service.sites.List(context, site.Filter{})
	if err != nil {
		return Document{}, err
	}

	bySite := make(map[int64][]SiteRecord, len(groups))
	for _, item := range sites {
		bySite[item.GroupID] = append(bySite[item.GroupID], SiteRecord{
			Name:        item.Name,
			URL:         item.URL,
			Icon:        item.Icon,
			Description: item.Description,
			Notes:       item.Notes,
			IsPublic:    item.IsPublic,
			OrderNum:    item.OrderNum,
		})
	}

	document := Document{
		Version:    FormatVersion,
		ExportedAt: service.now().UTC(),
		Groups:     make([]GroupRecord, 0, len(groups)),
	}
	for _, item := range groups {
		records := bySite[item.ID]
		if records == nil {
			records = []SiteRecord{}
		}
		document.Groups = append(document.Groups, GroupRecord{
			Name:     item.Name,
			Icon:     item.Icon,
			IsPublic: item.IsPublic,
			OrderNum: item.OrderNum,
			Sites:    records,
		})
	}

	service.logger.InfoContext(context, "board_exported",
		slog.Int("groups", len(document.Groups)),
		slog.Int("sites", len(sites)),
	)

	return document, nil
}

/*
Import validates a document and writes it in one transaction.

Parameters:
  - context: context.Context
  - document: Document
  - mode: Mode (append or replace)

Returns:
  - Summary: Rows created
  - error: VALIDATION_ERROR naming every bad field, or a storage failure
*/
func (service *Service) Import(context context.Context, document Document, mode Mode) (Summary, error) {
	document = normalize(document)
	if err := Validate(document, mode); err != nil {
		return Summary{}, err
	}

	summary, err := service.importer.Import(context, document, mode)
	if err != nil {
		return Summary{}, err
	}

	attrs := []any{
		slog.String("mode", string(mode)),
		slog.Int("groups", summary.Groups),
		slog.Int("sites", summary.Sites),
	}
	if claims := ctxutil.ClaimsFrom(context); claims != nil {
		attrs = append(attrs, slog.String("subject", claims.Subject))
	}
	service.logger.InfoContext(context, "board_imported", attrs...)

	return summary, nil
}

// normalize trims names and URLs the way the group and site services do.
// The caller's slices are left untouched.
func normalize(document Document) Document {
	groups := make([]GroupRecord, len(document.Groups))
	for groupIndex, record := range document.Groups {
		record.Name = strings.TrimSpace(record.Name)

		sites := make([]SiteRecord, len(record.Sites))
		for siteIndex, item := range record.Sites {
			item.Name = strings.TrimSpace(item.Name)
			item.URL = strings.TrimSpace(item.URL)
			sites[siteIndex] = item
		}
		record.Sites = sites

		groups[groupIndex] = record
	}
	document.Groups = groups
	return document
}

// Validate checks the document shape and the same field rules as the group and site services.
func Validate(document Document, mode Mode) error {
	validator := &validate.Validator{}
	validator.OneOf("mode", string(mode), string(ModeAppend), string(ModeReplace))
	validator.Custom("version", document.Version != FormatVersion, fmt.Sprintf("Must be %d", FormatVersion))

	for groupIndex, record := range document.Groups {
		prefix := fmt.Sprintf("groups[%d]", groupIndex)
		validator.Required(prefix+".name", record.Name).MaxLen(prefix+".name", record.Name, group.MaxNameLength)

		for siteIndex, item := range record.Sites {
			sitePrefix := fmt.Sprintf("%s.sites[%d]", prefix, siteIndex)
			validator.Required(sitePrefix+".name", item.Name).MaxLen(sitePrefix+".name", item.Name, site.MaxNameLength)
			validator.URL(sitePrefix+".url", item.URL)
		}
	}

	return validator.Err()
}
