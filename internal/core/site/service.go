// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/linkdeck/internal/platform/validate"
	"github.com/taibuivan/linkdeck/pkg/pointer"
)

// # Service Layer

// Service orchestrates business rules for sites.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new site [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListSites returns sites in display order, optionally for one group.
func (service *Service) ListSites(context context.Context, filter Filter) ([]*Site, error) {
	return service.repo.List(context, filter)
}

// GetSite returns one site or dberr.ErrNotFound.
func (service *Service) GetSite(context context.Context, id int64) (*Site, error) {
	return service.repo.FindByID(context, id)
}

// validateSite checks a fully merged site before it is written.
func validateSite(site *Site) error {
	validator := &validate.Validator{}
	validator.Custom(FieldGroupID, site.GroupID <= 0, "Must be a positive integer")
	validator.Required(FieldName, site.Name).MaxLen(FieldName, site.Name, MaxNameLength)
	validator.Required(FieldURL, site.URL).MaxLen(FieldURL, site.URL, MaxURLLength)
	if site.URL != "" {
		validator.URL(FieldURL, site.URL)
	}
	validator.MaxLen(FieldIcon, site.Icon, MaxIconLength)
	validator.MaxLen(FieldDescription, site.Description, MaxDescriptionLength)
	validator.MaxLen(FieldNotes, site.Notes, MaxNotesLength)
	return validator.Err()
}

/*
CreateSite validates and stores a new site.

Description: Without an explicit order_num the site is appended after the
last site of its group. Sites are public unless stated otherwise.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Site: Stored entity
  - error: Validation, Unprocessable (unknown group) or persistence failures
*/
func (service *Service) CreateSite(context context.Context, input CreateInput) (*Site, error) {
	site := &Site{
		GroupID:     input.GroupID,
		Name:        strings.TrimSpace(input.Name),
		URL:         strings.TrimSpace(input.URL),
		Icon:        input.Icon,
		Description: input.Description,
		Notes:       input.Notes,
		IsPublic:    pointer.Fallback(input.IsPublic, true),
	}

	if err := validateSite(site); err != nil {
		return nil, err
	}

	if input.OrderNum != nil {
		site.OrderNum = *input.OrderNum
	} else {
		next, err := service.repo.NextOrderNum(context, site.GroupID)
		if err != nil {
			return nil, err
		}
		site.OrderNum = next
	}

	if err := service.repo.Create(context, site); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "site_created",
		slog.Int64("site_id", site.ID),
		slog.Int64("group_id", site.GroupID),
	)

	return site, nil
}

/*
UpdateSite applies a partial update.

Description: Moving a site to another group without an explicit order_num
appends it to the end of the target group.

Parameters:
  - context: context.Context
  - id: int64
  - input: UpdateInput

Returns:
  - *Site: Updated entity
  - error: Validation, ErrNotFound or persistence failures
*/
func (service *Service) UpdateSite(context context.Context, id int64, input UpdateInput) (*Site, error) {
	site, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	previousGroup := site.GroupID

	site.GroupID = pointer.Fallback(input.GroupID, site.GroupID)
	if input.Name != nil {
		site.Name = strings.TrimSpace(*input.Name)
	}
	if input.URL != nil {
		site.URL = strings.TrimSpace(*input.URL)
	}
	site.Icon = pointer.Fallback(input.Icon, site.Icon)
	site.Description = pointer.Fallback(input.Description, site.Description)
	site.Notes = pointer.Fallback(input.Notes, site.Notes)
	site.IsPublic = pointer.Fallback(input.IsPublic, site.IsPublic)

	if err := validateSite(site); err != nil {
		return nil, err
	}

	switch {
	case input.OrderNum != nil:
		site.OrderNum = *input.OrderNum
	case site.GroupID != previousGroup:
		next, err := service.repo.NextOrderNum(context, site.GroupID)
		if err != nil {
			return nil, err
		}
		site.OrderNum = next
	}

	if err := service.repo.Update(context, site); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "site_updated", slog.Int64("site_id", site.ID))

	return site, nil
}

// DeleteSite removes a site.
func (service *Service) DeleteSite(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "site_deleted", slog.Int64("site_id", id))

	return nil
}
