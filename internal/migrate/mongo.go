package migrate

import (
	"context"
	"fmt"

	"yoga-marketplace/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplyMongo creates the lookup indexes the listing and cart queries rely on.
// uniqueCart adds a unique (classId, userMail) index; it fails if duplicates already exist.
func ApplyMongo(ctx context.Context, database *mongo.Database, uniqueCart bool) error {
	classIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "instructorEmail", Value: 1}}},
	}
	if _, err := database.Collection(db.ClassesCollection).Indexes().CreateMany(ctx, classIdx); err != nil {
		return fmt.Errorf("create class indexes: %w", err)
	}

	cartIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userMail", Value: 1}}},
		{Keys: bson.D{{Key: "classId", Value: 1}}},
	}
	if uniqueCart {
		cartIdx = append(cartIdx, mongo.IndexModel{
			Keys:    bson.D{{Key: "classId", Value: 1}, {Key: "userMail", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("cart_class_user_unique"),
		})
	}
	if _, err := database.Collection(db.CartCollection).Indexes().CreateMany(ctx, cartIdx); err != nil {
		return fmt.Errorf("create cart indexes: %w", err)
	}
	return nil
}
