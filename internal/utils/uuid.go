package utils

import "github.com/google/uuid"

// UUIDGenerator issues row identifiers. UUIDv7 keeps ids time-ordered, which
// both PostgreSQL UUID columns and SQLite TEXT keys index well.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, or a random v4 if the clock read fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsValidID reports whether id is a well-formed UUID. Path ids that fail
// this check are answered as not found without touching the store.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
