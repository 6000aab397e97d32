// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/linkdeck/internal/platform/validate"
	"github.com/taibuivan/linkdeck/pkg/pointer"
	"github.com/taibuivan/linkdeck/pkg/slug"
)

// # Service Layer

// Service orchestrates business rules for groups.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new group [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Group Retrieval

// ListGroups returns every group in display order.
func (service *Service) ListGroups(context context.Context) ([]*Group, error) {
	return service.repo.List(context)
}

// GetGroup returns one group or dberr.ErrNotFound.
func (service *Service) GetGroup(context context.Context, id int64) (*Group, error) {
	return service.repo.FindByID(context, id)
}

// # Group Management

/*
CreateGroup validates and stores a new group.

Description: The slug is derived from the name. Without an explicit
order_num the group is appended after the current last group. Groups are
public unless stated otherwise.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Group: Stored entity
  - error: Validation or persistence failures
*/
func (service *Service) CreateGroup(context context.Context, input CreateInput) (*Group, error) {
	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
	validator.MaxLen(FieldIcon, input.Icon, MaxIconLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	group := &Group{
		Name:     name,
		Slug:     slug.FromOr(name, "group"),
		Icon:     input.Icon,
		IsPublic: pointer.Fallback(input.IsPublic, true),
	}

	if input.OrderNum != nil {
		group.OrderNum = *input.OrderNum
	} else {
		next, err := service.repo.NextOrderNum(context)
		if err != nil {
			return nil, err
		}
		group.OrderNum = next
	}

	if err := service.repo.Create(context, group); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "group_created",
		slog.Int64("group_id", group.ID),
		slog.Int("order_num", group.OrderNum),
	)

	return group, nil
}

/*
UpdateGroup applies a partial update.

Parameters:
  - context: context.Context
  - id: int64
  - input: UpdateInput (nil fields are kept)

Returns:
  - *Group: Updated entity
  - error: Validation, ErrNotFound or persistence failures
*/
func (service *Service) UpdateGroup(context context.Context, id int64, input UpdateInput) (*Group, error) {
	validator := &validate.Validator{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
	}
	if input.Icon != nil {
		validator.MaxLen(FieldIcon, *input.Icon, MaxIconLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	group, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		group.Name = strings.TrimSpace(*input.Name)
		group.Slug = slug.FromOr(group.Name, "group")
	}
	group.Icon = pointer.Fallback(input.Icon, group.Icon)
	group.IsPublic = pointer.Fallback(input.IsPublic, group.IsPublic)
	group.OrderNum = pointer.Fallback(input.OrderNum, group.OrderNum)

	if err := service.repo.Update(context, group); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "group_updated", slog.Int64("group_id", group.ID))

	return group, nil
}

// DeleteGroup removes a group and its sites.
func (service *Service) DeleteGroup(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "group_deleted", slog.Int64("group_id", id))

	return nil
}
