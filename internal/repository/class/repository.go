package class

import (
	"context"

	"yoga-marketplace/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository persists class documents. Implementations must be safe for concurrent use.
//
// SetStatus and UpdateDetails report a zero MatchedCount when the document is missing; with
// upsert set they create it instead and report the new id in UpsertedID.
type Repository interface {
	Insert(ctx context.Context, c domain.Class) (domain.InsertResult, error)
	List(ctx context.Context, f domain.ClassFilter) ([]domain.Class, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Class, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ClassStatus, reason string, upsert bool) (domain.UpdateResult, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, d domain.ClassDetails, upsert bool) (domain.UpdateResult, error)
}
