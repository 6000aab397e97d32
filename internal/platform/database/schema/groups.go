package schema

import "strings"

// GroupsTable represents the 'groups' table
type GroupsTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	Icon      string
	IsPublic  string
	OrderNum  string
	CreatedAt string
	UpdatedAt string
}

// Groups is the schema definition for groups
var Groups = GroupsTable{
	Table:     "groups",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	Icon:      "icon",
	IsPublic:  "is_public",
	OrderNum:  "order_num",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns lists every column in scan order.
func (t GroupsTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Icon, t.IsPublic, t.OrderNum, t.CreatedAt, t.UpdatedAt}
}

// Select returns the comma-separated column list.
func (t GroupsTable) Select() string { return strings.Join(t.Columns(), ", ") }
