// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines names and defaults for the MongoDB document
// store: database and collection names, counter sequence names, and indexed field
// names. Keeping them here avoids scattering string literals across the
// repository layer.
package constants

// Document Store Names define the MongoDB database and collection layout.
const (
	// DefaultMongoURI is the fallback connection string for local development.
	DefaultMongoURI = "mongodb://localhost:27017"

	// DefaultDatabaseName is the application's MongoDB database.
	DefaultDatabaseName = "minifeed"

	// CollectionUsers holds user documents.
	CollectionUsers = "users"

	// CollectionPosts holds post documents.
	CollectionPosts = "posts"

	// CollectionCounters holds the atomic id sequence documents.
	CollectionCounters = "counters"
)

// Sequence Names identify the counter documents used for id assignment.
const (
	// SeqUsers is the counter sequence for user ids.
	SeqUsers = "user_id"

	// SeqPosts is the counter sequence for post ids.
	SeqPosts = "post_id"
)

// Field Names for indexed or frequently queried document fields.
const (
	// FieldUserID is the numeric user identifier field.
	FieldUserID = "user_id"

	// FieldPostID is the numeric post identifier field.
	FieldPostID = "post_id"

	// FieldUsername is the unique username field.
	FieldUsername = "username"

	// FieldLikes is the post like counter field.
	FieldLikes = "likes"

	// FieldComments is the post comment list field.
	FieldComments = "comments"
)

// Store Timeouts bound document store operations.
const (
	// DefaultMongoConnectTimeout bounds the initial connection attempt.
	DefaultMongoConnectTimeout = "10s"
)
