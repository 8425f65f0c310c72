package db

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection        = "users"
	companiesCollection    = "company"
	locationsCollection    = "parking-locations"
	spotsCollection        = "Parking"
	reservationsCollection = "reserve"
)

// ErrNotFound is returned by every repository when the addressed document is absent.
var ErrNotFound = errors.New("document not found")

// wrapStoreError converts a Firestore NotFound status into ErrNotFound and
// annotates any other failure with the operation and document.
func wrapStoreError(err error, op, kind, id string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s with ID '%s' not found: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("failed to %s %s with ID '%s': %w", op, kind, id, err)
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
