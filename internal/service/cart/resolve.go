package cart

import (
	"context"

	"yoga-marketplace/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolution is the outcome of mapping cart class references onto class documents.
type Resolution struct {
	// Classes holds one document per distinct resolved id, in first-reference order.
	Classes []domain.Class
	// Unparsable lists references that are not valid identifiers.
	Unparsable []string
	// Missing lists well-formed references with no matching class.
	Missing []string
}

// Resolve parses every reference and loads the classes with a single batched lookup.
func Resolve(ctx context.Context, classes classLookup, classIDs []string) (Resolution, error) {
	res := Resolution{Classes: []domain.Class{}}

	seen := make(map[primitive.ObjectID]struct{}, len(classIDs))
	ids := make([]primitive.ObjectID, 0, len(classIDs))
	for _, raw := range classIDs {
		id, err := domain.ParseID(raw)
		if err != nil {
			res.Unparsable = append(res.Unparsable, raw)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return res, nil
	}

	found, err := classes.GetByIDs(ctx, ids)
	if err != nil {
		return Resolution{}, err
	}
	byID := make(map[primitive.ObjectID]domain.Class, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			res.Missing = append(res.Missing, id.Hex())
			continue
		}
		res.Classes = append(res.Classes, c)
	}
	return res, nil
}
