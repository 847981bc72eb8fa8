package models

// User represents a registered user of the application.
// It contains authentication information and core user attributes.
// The numeric ID comes from the store's atomic counter sequence.
type User struct {
	ID             int64  `json:"user_id" bson:"user_id"`
	Username       string `json:"username" bson:"username" validate:"required,min=3,max=50"`
	FullName       string `json:"full_name" bson:"full_name"`
	HashedPassword string `json:"-" bson:"hashed_password"`
	Disabled       bool   `json:"disabled" bson:"disabled"`
}

// NewUser creates a new User instance with the given username and full name.
// The password hash is populated later during the registration process.
func NewUser(username, fullName string) *User {
	return &User{
		Username: username,
		FullName: fullName,
	}
}

// CollectionName returns the store collection name for the User model.
func (u *User) CollectionName() string {
	return "users"
}

// Sanitize removes sensitive information from the User object when sending to clients.
// This ensures the password hash is never exposed in a response payload.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.HashedPassword = ""
	return &sanitized
}

// UserCredentials represents the login credentials submitted to the token endpoint.
type UserCredentials struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

// UserRegistration represents the data required for user registration.
// The password arrives in plaintext and is hashed before persistence.
type UserRegistration struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Disabled bool   `json:"disabled"`
}
