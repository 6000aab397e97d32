// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package transfer exports the whole board as one JSON document and imports it back.

An import runs in a single transaction: the board either gains every group and
site of the document or stays exactly as it was. Identifiers are not carried
over; imported rows get fresh ids.
*/
package transfer

import "time"

// FormatVersion is the document version written by export and accepted by import.
const FormatVersion = 1

// Document is the export file.
type Document struct {
	Version    int           `json:"version"`
	ExportedAt time.Time     `json:"exported_at"`
	Groups     []GroupRecord `json:"groups"`
}

// GroupRecord is a group with its sites, in display order.
type GroupRecord struct {
	Name     string       `json:"name"`
	Icon     string       `json:"icon"`
	IsPublic bool         `json:"is_public"`
	OrderNum int          `json:"order_num"`
	Sites    []SiteRecord `json:"sites"`
}

// SiteRecord is one site of a [GroupRecord].
type SiteRecord struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	IsPublic    bool   `json:"is_public"`
	OrderNum    int    `json:"order_num"`
}

// Mode selects how an import treats the existing board.
type Mode string

const (
	// ModeAppend adds the document next to the existing groups.
	ModeAppend Mode = "append"
	// ModeReplace deletes every group and site first.
	ModeReplace Mode = "replace"
)

// Summary counts the rows an import created.
type Summary struct {
	Groups int `json:"groups"`
	Sites  int `json:"sites"`
}
