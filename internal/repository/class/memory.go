package class

import (
	"context"
	"sync"

	"yoga-marketplace/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryRepo is a process-local store used for tests and STORE_DRIVER=memory.
type memoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	byID  map[primitive.ObjectID]domain.Class
}

func NewMemory() Repository {
	return &memoryRepo{byID: make(map[primitive.ObjectID]domain.Class)}
}

func (r *memoryRepo) Insert(_ context.Context, c domain.Class) (domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = domain.NewID()
	}
	if _, exists := r.byID[c.ID]; exists {
		return domain.InsertResult{}, domain.ErrAlreadyExists
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return domain.InsertResult{Acknowledged: true, InsertedID: c.ID.Hex()}, nil
}

func (r *memoryRepo) List(_ context.Context, f domain.ClassFilter) ([]domain.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Class{}
	for _, id := range r.order {
		if c := r.byID[id]; f.Matches(c) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	want := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	result := []domain.Class{}
	for _, id := range r.order {
		if _, ok := want[id]; ok {
			result = append(result, r.byID[id])
		}
	}
	return result, nil
}

func (r *memoryRepo) SetStatus(_ context.Context, id primitive.ObjectID, status domain.ClassStatus, reason string, upsert bool) (domain.UpdateResult, error) {
	return r.apply(id, upsert, func(c *domain.Class) {
		c.Status = status
		c.Reason = reason
	})
}

func (r *memoryRepo) UpdateDetails(_ context.Context, id primitive.ObjectID, d domain.ClassDetails, upsert bool) (domain.UpdateResult, error) {
	return r.apply(id, upsert, func(c *domain.Class) {
		c.Name = d.Name
		c.Description = d.Description
		c.Price = d.Price
		c.AvailableSeats = d.AvailableSeats
		c.VideoLink = d.VideoLink
		c.Status = domain.StatusPending
		c.Reason = ""
	})
}

func (r *memoryRepo) apply(id primitive.ObjectID, upsert bool, mutate func(*domain.Class)) (domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		if !upsert {
			return domain.UpdateResult{Acknowledged: true}, nil
		}
		created := domain.Class{ID: id}
		mutate(&created)
		r.byID[id] = created
		r.order = append(r.order, id)
		return domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id.Hex()}, nil
	}

	updated := current
	mutate(&updated)
	r.byID[id] = updated
	res := domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if updated != current {
		res.ModifiedCount = 1
	}
	return res, nil
}
