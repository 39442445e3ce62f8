package models

import "time"

// User represents a registered account.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	// UserID is the UUIDv7 identifier assigned on registration.
	UserID string `json:"userId"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is unique across all users and is used as the login name.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It must never leave the service layer.
	Password string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Owner is the public projection of a restaurant owner embedded into
// restaurant responses.
type Owner struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UserUpdate is a partial update of a user's profile.
// Only non-nil fields are written.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil
}
