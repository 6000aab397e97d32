// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package group manages the named sections that hold site bookmarks.

# Core Responsibility

  - Organization: Defines the [Group] entity and its display metadata.
  - Ordering: New groups are appended after the current last position.
  - Lifecycle: Deleting a group removes its sites with it.

Bulk reordering lives in the ordering package.
*/
package group

import "time"

// # Core Entities

// Group is a named, ordered section of the link board.
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon"`
	IsPublic  bool      `json:"is_public"`
	OrderNum  int       `json:"order_num"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the body of a group creation request.
// A nil OrderNum appends the group at the end.
type CreateInput struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	IsPublic *bool  `json:"is_public"`
	OrderNum *int   `json:"order_num"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name     *string `json:"name"`
	Icon     *string `json:"icon"`
	IsPublic *bool   `json:"is_public"`
	OrderNum *int    `json:"order_num"`
}

// # Field Identifiers

const (
	FieldName = "name"
	FieldIcon = "icon"

	// MaxNameLength bounds group names.
	MaxNameLength = 100
	// MaxIconLength bounds icon references (URL, emoji or data URI).
	MaxIconLength = 2048
)
