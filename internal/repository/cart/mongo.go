package cart

import (
	"context"
	"errors"
	"time"

	"yoga-marketplace/internal/db"
	"yoga-marketplace/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepo struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{coll: database.Collection(db.CartCollection)}
}

func (r *mongoRepo) Insert(ctx context.Context, e domain.CartEntry) (domain.InsertResult, error) {
	if e.ID.IsZero() {
		e.ID = domain.NewID()
	}
	if e.Date == nil {
		now := time.Now().UTC()
		e.Date = &now
	}
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.InsertResult{}, domain.ErrAlreadyExists
		}
		return domain.InsertResult{}, err
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: e.ID.Hex()}, nil
}

func (r *mongoRepo) FindOne(ctx context.Context, classID, userMail string) (*domain.CartEntry, error) {
	opts := options.FindOne().SetProjection(bson.M{"classId": 1})
	var e domain.CartEntry
	err := r.coll.FindOne(ctx, bson.M{"classId": classID, "userMail": userMail}, opts).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *mongoRepo) ClassIDs(ctx context.Context, userMail string) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"classId": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userMail": userMail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.CartEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ClassID)
	}
	return ids, nil
}

func (r *mongoRepo) DeleteOne(ctx context.Context, classID, userMail string) (domain.DeleteResult, error) {
	filter := bson.M{"classId": classID}
	if userMail != "" {
		filter["userMail"] = userMail
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
