package domain

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts the hex form of a document identifier into the store's identifier type.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return id, nil
}

// NewID returns a fresh identifier. Every backend uses it so ids look the same regardless of store.
func NewID() primitive.ObjectID {
	return primitive.NewObjectID()
}
