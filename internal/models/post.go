package models

// Post represents a user-authored post with its engagement counters.
// Comments are plain strings kept in submission order; likes are a counter
// incremented atomically by the store.
type Post struct {
	ID       int64    `json:"post_id" bson:"post_id"`
	UserID   int64    `json:"user_id" bson:"user_id"`
	Content  string   `json:"content" bson:"content"`
	Likes    int64    `json:"likes" bson:"likes"`
	Comments []string `json:"comments" bson:"comments"`
}

// NewPost creates a new Post for the given author with zero likes and no comments.
func NewPost(userID int64, content string) *Post {
	return &Post{
		UserID:   userID,
		Content:  content,
		Likes:    0,
		Comments: []string{},
	}
}

// CollectionName returns the store collection name for the Post model.
func (p *Post) CollectionName() string {
	return "posts"
}

// PostCreate represents the data required to create a post.
type PostCreate struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=1000"`
}

// PostComment represents a comment submitted in a request body.
// Comment text may also arrive as a query parameter; the handler
// reconciles the two before validation.
type PostComment struct {
	Comment string `json:"comment" validate:"required,max=500"`
}
