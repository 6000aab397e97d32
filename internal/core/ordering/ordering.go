// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ordering persists drag-and-drop reorders of groups and sites.

A reorder replaces the order_num of every listed row in one sibling scope.
The whole request is applied as a single transactional batch: either every
row takes its new position or none does.

# Unknown identifiers

An id with no matching row updates nothing and does not fail the batch.
The same rule holds for both scopes.
*/
package ordering

import (
	"errors"

	"github.com/taibuivan/linkdeck/internal/platform/database/schema"
)

// ErrBatchFailed reports that a reorder was not applied. Storage is unchanged.
var ErrBatchFailed = errors.New("ordering: batch failed")

// Scope names the sibling set whose order_num values are compared.
type Scope string

const (
	ScopeGroups Scope = "groups"
	ScopeSites  Scope = "sites"
)

// table resolves the scope to its backing table.
func (scope Scope) table() (string, bool) {
	switch scope {
	case ScopeGroups:
		return schema.Groups.Table, true
	case ScopeSites:
		return schema.Sites.Table, true
	}
	return "", false
}

// Item is one requested position.
type Item struct {
	ID       int64 `json:"id"`
	OrderNum int   `json:"order_num"`
}

// # Field Identifiers

const (
	FieldItems    = "items"
	FieldID       = "id"
	FieldOrderNum = "order_num"
)
