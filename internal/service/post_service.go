package service

import (
	"context"

	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/database"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/repository"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// PostService handles post creation and engagement
type PostService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	sequencer database.Sequencer
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	sequencer database.Sequencer,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		sequencer: sequencer,
	}
}

// Create validates the author exists, mints a post ID from the counter
// sequence, and inserts the post with zero likes and no comments.
// The author check is a boolean existence probe, not a full document load.
func (s *PostService) Create(ctx context.Context, create *models.PostCreate) (*models.Post, error) {
	exists, err := s.userRepo.ExistsByID(ctx, create.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewNotFoundError("User", create.UserID)
	}

	id, err := s.sequencer.NextSequence(ctx, constants.SeqPosts)
	if err != nil {
		return nil, err
	}

	post := models.NewPost(create.UserID, create.Content)
	post.ID = id

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// List retrieves all posts
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// Like increments the like counter of the given post.
// The increment is atomic at the store, so concurrent likes all count.
func (s *PostService) Like(ctx context.Context, postID int64) error {
	return s.postRepo.IncrementLikes(ctx, postID)
}

// Comment appends comment text to the given post
func (s *PostService) Comment(ctx context.Context, postID int64, comment string) error {
	return s.postRepo.AddComment(ctx, postID, comment)
}
