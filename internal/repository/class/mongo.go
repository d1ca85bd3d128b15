package class

import (
	"context"
	"errors"

	"yoga-marketplace/internal/db"
	"yoga-marketplace/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepo struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{coll: database.Collection(db.ClassesCollection)}
}

func (r *mongoRepo) Insert(ctx context.Context, c domain.Class) (domain.InsertResult, error) {
	if c.ID.IsZero() {
		c.ID = domain.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return domain.InsertResult{}, err
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: c.ID.Hex()}, nil
}

func (r *mongoRepo) List(ctx context.Context, f domain.ClassFilter) ([]domain.Class, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.InstructorEmail != "" {
		filter["instructorEmail"] = f.InstructorEmail
	}
	return r.find(ctx, filter)
}

func (r *mongoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error) {
	var c domain.Class
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Class, error) {
	if len(ids) == 0 {
		return []domain.Class{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongoRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ClassStatus, reason string, upsert bool) (domain.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"status": status, "reason": reason}}
	return r.updateOne(ctx, id, update, upsert)
}

func (r *mongoRepo) UpdateDetails(ctx context.Context, id primitive.ObjectID, d domain.ClassDetails, upsert bool) (domain.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"name":           d.Name,
			"description":    d.Description,
			"price":          d.Price,
			"availableSeats": d.AvailableSeats,
			"videoLink":      d.VideoLink,
			"status":         domain.StatusPending,
		},
		"$unset": bson.M{"reason": ""},
	}
	return r.updateOne(ctx, id, update, upsert)
}

func (r *mongoRepo) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M, upsert bool) (domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return domain.UpdateResult{}, err
	}
	out := domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

func (r *mongoRepo) find(ctx context.Context, filter bson.M) ([]domain.Class, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []domain.Class{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
