package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/database"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// PostRepository defines the operations for persisting and loading posts
type PostRepository interface {
	// Create inserts a new post document
	Create(ctx context.Context, post *models.Post) error

	// GetByID retrieves a post by numeric ID
	GetByID(ctx context.Context, id int64) (*models.Post, error)

	// List retrieves all posts ordered by ID
	List(ctx context.Context) ([]*models.Post, error)

	// IncrementLikes atomically adds one to a post's like counter
	IncrementLikes(ctx context.Context, id int64) error

	// AddComment appends a comment to a post's comment list
	AddComment(ctx context.Context, id int64, comment string) error
}

// mongoPostRepository is the document store implementation of PostRepository
type mongoPostRepository struct {
	store *database.Store
}

// NewPostRepository creates a new PostRepository backed by the store
func NewPostRepository(store *database.Store) PostRepository {
	return &mongoPostRepository{
		store: store,
	}
}

// Create inserts a new post document
func (r *mongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	start := time.Now()

	_, err := r.store.Posts().InsertOne(ctx, post)
	utils.LogStoreOp(constants.CollectionPosts, "insert", post.ID, time.Since(start), err)

	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewDuplicateError("Post", constants.FieldPostID, post.ID)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by numeric ID
func (r *mongoPostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	start := time.Now()

	var post models.Post
	err := r.store.Posts().FindOne(ctx, bson.M{constants.FieldPostID: id}).Decode(&post)
	utils.LogStoreOp(constants.CollectionPosts, "find_one", id, time.Since(start), err)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Post", id)
		}
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return &post, nil
}

// List retrieves all posts ordered by ID
func (r *mongoPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	start := time.Now()

	opts := options.Find().SetSort(bson.D{{Key: constants.FieldPostID, Value: 1}})
	cursor, err := r.store.Posts().Find(ctx, bson.M{}, opts)
	utils.LogStoreOp(constants.CollectionPosts, "find", "all", time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]*models.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, nil
}

// IncrementLikes atomically adds one to a post's like counter.
// The single $inc update means concurrent likes never lose increments.
func (r *mongoPostRepository) IncrementLikes(ctx context.Context, id int64) error {
	start := time.Now()

	result, err := r.store.Posts().UpdateOne(ctx,
		bson.M{constants.FieldPostID: id},
		bson.M{"$inc": bson.M{constants.FieldLikes: int64(1)}},
	)
	utils.LogStoreOp(constants.CollectionPosts, "inc_likes", id, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to increment likes: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("Post", id)
	}

	return nil
}

// AddComment appends a comment to a post's comment list.
// $push keeps concurrent comments in arrival order without read-modify-write.
func (r *mongoPostRepository) AddComment(ctx context.Context, id int64, comment string) error {
	start := time.Now()

	result, err := r.store.Posts().UpdateOne(ctx,
		bson.M{constants.FieldPostID: id},
		bson.M{"$push": bson.M{constants.FieldComments: comment}},
	)
	utils.LogStoreOp(constants.CollectionPosts, "add_comment", id, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("Post", id)
	}

	return nil
}
