package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arjunsdev/minifeed/internal/config"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// Store wraps the MongoDB client and the application database handle.
// All repositories go through a Store; it owns connection lifecycle,
// index creation, and the counter sequences that mint numeric IDs.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a connection to MongoDB using the provided configuration
// and verifies it with a ping before returning.
func Connect(cfg *config.DatabaseSettings) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Release the half-open client before reporting failure
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	log.Info().
		Str("database", cfg.Name).
		Msg("Connected to document store")

	return &Store{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// Close disconnects from the store
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from store: %w", err)
	}

	log.Info().Msg("Document store connection closed")
	return nil
}

// Ping verifies the store connection is alive
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Collection returns a handle to the named collection
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Users returns the users collection
func (s *Store) Users() *mongo.Collection {
	return s.db.Collection(constants.CollectionUsers)
}

// Posts returns the posts collection
func (s *Store) Posts() *mongo.Collection {
	return s.db.Collection(constants.CollectionPosts)
}

// Counters returns the counters collection backing ID sequences
func (s *Store) Counters() *mongo.Collection {
	return s.db.Collection(constants.CollectionCounters)
}

// EnsureIndexes creates the indexes the application relies on.
// The unique username index is what turns a concurrent duplicate
// registration into a store-level duplicate key error.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	start := time.Now()

	_, err := s.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: constants.FieldUsername, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	utils.LogStoreOp(constants.CollectionUsers, "create_index", constants.FieldUsername, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	start = time.Now()
	_, err = s.Posts().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: constants.FieldPostID, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	utils.LogStoreOp(constants.CollectionPosts, "create_index", constants.FieldPostID, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to create post id index: %w", err)
	}

	log.Info().Msg("Store indexes ensured")
	return nil
}

// counterDoc is the shape of a document in the counters collection
type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// NextSequence atomically increments and returns the named counter.
// The upsert creates the counter at 1 on first use, and the single
// findAndModify round trip makes concurrent callers see distinct values.
func (s *Store) NextSequence(ctx context.Context, name string) (int64, error) {
	start := time.Now()

	filter := bson.M{"_id": name}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := s.Counters().FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	utils.LogStoreOp(constants.CollectionCounters, "next_sequence", name, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s: %w", name, err)
	}

	return doc.Seq, nil
}

// HealthCheck reports whether the store connection is usable
func (s *Store) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("store health check failed: %w", err)
	}
	return nil
}
