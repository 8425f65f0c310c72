package core

import "github.com/google/uuid"

// IDGenerator produces document IDs for new companies, locations and spots.
type IDGenerator func() string

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}
