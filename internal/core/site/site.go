// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package site manages the bookmarks listed inside a group.

Each site belongs to exactly one group and is ordered among its siblings by
order_num. Bulk reordering lives in the ordering package.
*/
package site

import "time"

// # Core Entities

// Site is one bookmark card.
type Site struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"group_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	IsPublic    bool      `json:"is_public"`
	OrderNum    int       `json:"order_num"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInput is the body of a site creation request.
// A nil OrderNum appends the site at the end of its group.
type CreateInput struct {
	GroupID     int64  `json:"group_id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	IsPublic    *bool  `json:"is_public"`
	OrderNum    *int   `json:"order_num"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
// Setting GroupID moves the site to another group.
type UpdateInput struct {
	GroupID     *int64  `json:"group_id"`
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	IsPublic    *bool   `json:"is_public"`
	OrderNum    *int    `json:"order_num"`
}

// Filter narrows a listing.
type Filter struct {
	GroupID *int64
}

// # Field Identifiers

const (
	FieldGroupID     = "group_id"
	FieldName        = "name"
	FieldURL         = "url"
	FieldIcon        = "icon"
	FieldDescription = "description"
	FieldNotes       = "notes"

	MaxNameLength        = 200
	MaxURLLength         = 2048
	MaxIconLength        = 2048
	MaxDescriptionLength = 1000
	MaxNotesLength       = 10000
)
