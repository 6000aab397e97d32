// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package listing serves the read-only home page board to anonymous visitors.

Only public groups and their public sites are included, in display order.
The assembled board is cached when a [Cache] is configured and dropped after
every successful write through [Service.Invalidate].
*/
package listing

import (
	"context"
	"time"
)

// PublicSite is the visitor view of a site. Private notes are omitted.
type PublicSite struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	OrderNum    int    `json:"order_num"`
}

// PublicGroup is a public group with its public sites.
type PublicGroup struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Slug     string       `json:"slug"`
	Icon     string       `json:"icon"`
	OrderNum int          `json:"order_num"`
	Sites    []PublicSite `json:"sites"`
}

// Cache is the key-value store holding the serialized board.
type Cache interface {
	Get(context context.Context, key string) ([]byte, bool, error)
	Set(context context.Context, key string, value []byte, ttl time.Duration) error
	Delete(context context.Context, keys ...string) error
}

// Store loads the board from the primary database.
type Store interface {
	PublicGroups(context context.Context) ([]PublicGroup, error)
}
