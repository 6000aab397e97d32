package schema

import "strings"

// SitesTable represents the 'sites' table
type SitesTable struct {
	Table       string
	ID          string
	GroupID     string
	Name        string
	URL         string
	Icon        string
	Description string
	Notes       string
	IsPublic    string
	OrderNum    string
	CreatedAt   string
	UpdatedAt   string
}

// Sites is the schema definition for sites
var Sites = SitesTable{
	Table:       "sites",
	ID:          "id",
	GroupID:     "group_id",
	Name:        "name",
	URL:         "url",
	Icon:        "icon",
	Description: "description",
	Notes:       "notes",
	IsPublic:    "is_public",
	OrderNum:    "order_num",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns lists every column in scan order.
func (t SitesTable) Columns() []string {
	return []string{t.ID, t.GroupID, t.Name, t.URL, t.Icon, t.Description, t.Notes, t.IsPublic, t.OrderNum, t.CreatedAt, t.UpdatedAt}
}

// Select returns the comma-separated column list.
func (t SitesTable) Select() string { return strings.Join(t.Columns(), ", ") }
