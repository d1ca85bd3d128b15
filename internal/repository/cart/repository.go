package cart

import (
	"context"

	"yoga-marketplace/internal/domain"
)

// Repository persists cart entries. Entries are never updated in place.
type Repository interface {
	Insert(ctx context.Context, e domain.CartEntry) (domain.InsertResult, error)
	// FindOne returns the entry for (classID, userMail) with only ID and ClassID populated.
	FindOne(ctx context.Context, classID, userMail string) (*domain.CartEntry, error)
	// ClassIDs returns the classId of every entry owned by userMail, oldest first.
	ClassIDs(ctx context.Context, userMail string) ([]string, error)
	// DeleteOne removes the oldest entry for classID. An empty userMail matches any owner.
	DeleteOne(ctx context.Context, classID, userMail string) (domain.DeleteResult, error)
}
