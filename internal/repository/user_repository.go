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

// UserRepository defines the operations for persisting and loading users
type UserRepository interface {
	// Create inserts a new user document
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by numeric ID
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// ExistsByID reports whether a user with the given ID exists
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByUsername reports whether a user with the given username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// List retrieves all users ordered by ID
	List(ctx context.Context) ([]*models.User, error)
}

// mongoUserRepository is the document store implementation of UserRepository
type mongoUserRepository struct {
	store *database.Store
}

// NewUserRepository creates a new UserRepository backed by the store
func NewUserRepository(store *database.Store) UserRepository {
	return &mongoUserRepository{
		store: store,
	}
}

// Create inserts a new user document. The unique username index turns a
// concurrent duplicate into a store error which is mapped to a conflict here,
// so the pre-insert existence check is advisory only.
func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()

	_, err := r.store.Users().InsertOne(ctx, user)
	utils.LogStoreOp(constants.CollectionUsers, "insert", user.Username, time.Since(start), err)

	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewDuplicateError("User", constants.FieldUsername, user.Username)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by numeric ID
func (r *mongoUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	start := time.Now()

	var user models.User
	err := r.store.Users().FindOne(ctx, bson.M{constants.FieldUserID: id}).Decode(&user)
	utils.LogStoreOp(constants.CollectionUsers, "find_one", id, time.Since(start), err)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *mongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	start := time.Now()

	var user models.User
	err := r.store.Users().FindOne(ctx, bson.M{constants.FieldUsername: username}).Decode(&user)
	utils.LogStoreOp(constants.CollectionUsers, "find_one", username, time.Since(start), err)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User", username)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

// ExistsByID reports whether a user with the given ID exists
func (r *mongoUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	count, err := r.store.Users().CountDocuments(ctx, bson.M{constants.FieldUserID: id}, options.Count().SetLimit(1))
	utils.LogStoreOp(constants.CollectionUsers, "count", id, time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

// ExistsByUsername reports whether a user with the given username exists
func (r *mongoUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	start := time.Now()

	count, err := r.store.Users().CountDocuments(ctx, bson.M{constants.FieldUsername: username}, options.Count().SetLimit(1))
	utils.LogStoreOp(constants.CollectionUsers, "count", username, time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

// List retrieves all users ordered by ID
func (r *mongoUserRepository) List(ctx context.Context) ([]*models.User, error) {
	start := time.Now()

	opts := options.Find().SetSort(bson.D{{Key: constants.FieldUserID, Value: 1}})
	cursor, err := r.store.Users().Find(ctx, bson.M{}, opts)
	utils.LogStoreOp(constants.CollectionUsers, "find", "all", time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]*models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}
