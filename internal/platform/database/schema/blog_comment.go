package schema

// BlogCommentTable represents the 'blog.comment' table
type BlogCommentTable struct {
	Table      string
	ID         string
	PostID     string
	UserID     string
	Body       string
	IsApproved string
	CreatedAt  string
	UpdatedAt  string
}

// BlogComment is the schema definition for blog.comment
var BlogComment = BlogCommentTable{
	Table:      "blog.comment",
	ID:         "id",
	PostID:     "postid",
	UserID:     "userid",
	Body:       "body",
	IsApproved: "isapproved",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
