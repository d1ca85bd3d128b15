package cart

import (
	"context"
	"sync"
	"time"

	"yoga-marketplace/internal/domain"
)

type memoryRepo struct {
	mu      sync.RWMutex
	entries []domain.CartEntry
}

func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Insert(_ context.Context, e domain.CartEntry) (domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID.IsZero() {
		e.ID = domain.NewID()
	}
	if e.Date == nil {
		now := time.Now().UTC()
		e.Date = &now
	}
	r.entries = append(r.entries, e)
	return domain.InsertResult{Acknowledged: true, InsertedID: e.ID.Hex()}, nil
}

func (r *memoryRepo) FindOne(_ context.Context, classID, userMail string) (*domain.CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ClassID == classID && e.UserMail == userMail {
			return &domain.CartEntry{ID: e.ID, ClassID: e.ClassID}, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) ClassIDs(_ context.Context, userMail string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := []string{}
	for _, e := range r.entries {
		if e.UserMail == userMail {
			ids = append(ids, e.ClassID)
		}
	}
	return ids, nil
}

func (r *memoryRepo) DeleteOne(_ context.Context, classID, userMail string) (domain.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ClassID != classID || (userMail != "" && e.UserMail != userMail) {
			continue
		}
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
		return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}
