package schema

// PostTagTable represents the 'blog.posttag' table
type PostTagTable struct {
	Table  string
	PostID string
	TagID  string
}

// PostTag is the schema definition for blog.posttag
var PostTag = PostTagTable{
	Table:  "blog.posttag",
	PostID: "postid",
	TagID:  "tagid",
}
