package schema

// NavMenuTable represents the 'nav.menu' table
type NavMenuTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// NavMenu is the schema definition for nav.menu
var NavMenu = NavMenuTable{
	Table:     "nav.menu",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

