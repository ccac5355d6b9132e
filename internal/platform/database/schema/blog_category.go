package schema

// BlogCategoryTable represents the 'blog.category' table
type BlogCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// BlogCategory is the schema definition for blog.category
var BlogCategory = BlogCategoryTable{
	Table:       "blog.category",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

