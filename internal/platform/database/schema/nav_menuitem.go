package schema

// NavMenuItemTable represents the 'nav.menuitem' table
type NavMenuItemTable struct {
	Table      string
	ID         string
	MenuID     string
	ParentID   string
	Label      string
	Icon       string
	Route      string
	URL        string
	IsExternal string
	IsActive   string
	Position   string
	CreatedAt  string
	UpdatedAt  string
}

// NavMenuItem is the schema definition for nav.menuitem
var NavMenuItem = NavMenuItemTable{
	Table:      "nav.menuitem",
	ID:         "id",
	MenuID:     "menuid",
	ParentID:   "parentid",
	Label:      "label",
	Icon:       "icon",
	Route:      "route",
	URL:        "url",
	IsExternal: "isexternal",
	IsActive:   "isactive",
	Position:   "position",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

