// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import "context"

// # Group Data Access

// Repository defines the data access contract for groups.
type Repository interface {

	/*
		List returns every group ordered by order_num, then id.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Group: All groups
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Group, error)

	/*
		FindByID retrieves a group by its identifier.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Group: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Group, error)

	/*
		NextOrderNum returns one past the highest order_num, or 0 when empty.
	*/
	NextOrderNum(context context.Context) (int, error)

	/*
		Create persists a new group and fills its id and timestamps.

		Parameters:
		  - context: context.Context
		  - group: *Group

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, group *Group) error

	/*
		Update writes every mutable column and refreshes updated_at.

		Returns:
		  - error: ErrNotFound if the group does not exist
	*/
	Update(context context.Context, group *Group) error

	// Delete removes a group and, through the foreign key, its sites.
	Delete(context context.Context, id int64) error
}
