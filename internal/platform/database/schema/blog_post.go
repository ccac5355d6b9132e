package schema

// BlogPostTable represents the 'blog.post' table
type BlogPostTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Content     string
	ImageURL    string
	CategoryID  string
	AuthorID    string
	IsPublished string
	PublishedAt string
	ViewCount   string
	CreatedAt   string
	UpdatedAt   string
}

// BlogPost is the schema definition for blog.post
var BlogPost = BlogPostTable{
	Table:       "blog.post",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Content:     "content",
	ImageURL:    "imageurl",
	CategoryID:  "categoryid",
	AuthorID:    "authorid",
	IsPublished: "ispublished",
	PublishedAt: "publishedat",
	ViewCount:   "viewcount",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

