package class

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yoga-marketplace/internal/domain"
	classrepo "yoga-marketplace/internal/repository/class"
	"yoga-marketplace/internal/validation"
)

// Service is the class registry: submissions, listings and moderation.
type Service struct {
	repo   classrepo.Repository
	upsert bool
	now    func() time.Time
}

// New builds the registry. With upsert set, updates addressed at a missing class create it
// instead of failing with domain.ErrNotFound.
func New(repo classrepo.Repository, upsert bool) *Service {
	return &Service{repo: repo, upsert: upsert, now: time.Now}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.InsertResult, error) {
	in.normalize()
	if err := validation.Struct(in); err != nil {
		return domain.InsertResult{}, err
	}
	return s.repo.Insert(ctx, in.toClass(s.now()))
}

func (s *Service) ListApproved(ctx context.Context) ([]domain.Class, error) {
	return s.repo.List(ctx, domain.ClassFilter{Status: domain.StatusApproved})
}

// ListByInstructor matches the email exactly; no case folding.
func (s *Service) ListByInstructor(ctx context.Context, email string) ([]domain.Class, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: instructor email required", domain.ErrValidation)
	}
	return s.repo.List(ctx, domain.ClassFilter{InstructorEmail: email})
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Class, error) {
	return s.repo.List(ctx, domain.ClassFilter{})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Class, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

// ChangeStatus applies a moderation decision. The current status is not checked, so any
// transition is accepted.
func (s *Service) ChangeStatus(ctx context.Context, id string, in StatusInput) (domain.UpdateResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	in.Status = domain.ClassStatus(strings.ToLower(strings.TrimSpace(string(in.Status))))
	if err := validation.Struct(in); err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := s.repo.SetStatus(ctx, oid, in.Status, in.Reason, s.upsert)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("set status of class %s: %w", id, err)
	}
	return s.checkMatched(res)
}

// UpdateDetails overwrites the editable fields and sends the class back to pending review.
func (s *Service) UpdateDetails(ctx context.Context, id string, in DetailsInput) (domain.UpdateResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	in.normalize()
	if err := validation.Struct(in); err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := s.repo.UpdateDetails(ctx, oid, in.toDetails(), s.upsert)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update class %s: %w", id, err)
	}
	return s.checkMatched(res)
}

func (s *Service) checkMatched(res domain.UpdateResult) (domain.UpdateResult, error) {
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return domain.UpdateResult{}, domain.ErrNotFound
	}
	return res, nil
}
