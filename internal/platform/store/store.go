// Package store holds the pieces of the document-store contract shared by
// every domain repository: identifier parsing, the error taxonomy, and the
// filter builder used by list queries.
package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound reports a well-formed identifier with no matching document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID reports an identifier string that is not a 24-character
	// hex ObjectID.
	ErrInvalidID = errors.New("invalid id format")
)

// ParseID converts a public identifier string into its stored form.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
