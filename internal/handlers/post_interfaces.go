package handlers

import (
	"context"

	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/service"
)

// PostServiceInterface defines the operations the post handlers need
type PostServiceInterface interface {
	// Create validates the author and inserts a new post
	Create(ctx context.Context, create *models.PostCreate) (*models.Post, error)

	// List retrieves all posts
	List(ctx context.Context) ([]*models.Post, error)

	// Like increments the like counter of a post
	Like(ctx context.Context, postID int64) error

	// Comment appends comment text to a post
	Comment(ctx context.Context, postID int64, comment string) error
}

// Ensure service.PostService implements PostServiceInterface
var _ PostServiceInterface = (*service.PostService)(nil)
