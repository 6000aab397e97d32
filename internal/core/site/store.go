// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site

import "context"

// # Site Data Access

// Repository defines the data access contract for sites.
type Repository interface {

	/*
		List returns sites ordered by group, order_num, then id.

		Parameters:
		  - context: context.Context
		  - filter: Filter (optional group restriction)

		Returns:
		  - []*Site: Matching sites
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter) ([]*Site, error)

	// FindByID retrieves a site or dberr.ErrNotFound.
	FindByID(context context.Context, id int64) (*Site, error)

	// NextOrderNum returns one past the highest order_num within a group.
	NextOrderNum(context context.Context, groupID int64) (int, error)

	/*
		Create persists a new site and fills its id and timestamps.

		Returns:
		  - error: Unprocessable if the group does not exist
	*/
	Create(context context.Context, site *Site) error

	// Update writes every mutable column and refreshes updated_at.
	Update(context context.Context, site *Site) error

	// Delete removes a site.
	Delete(context context.Context, id int64) error
}
