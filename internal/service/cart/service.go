package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yoga-marketplace/internal/domain"
	cartrepo "yoga-marketplace/internal/repository/cart"
	"yoga-marketplace/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ResolvePolicy decides what ListForUser does with cart entries whose class cannot be resolved.
type ResolvePolicy string

const (
	// ResolveSkip logs and omits unparsable or missing class references.
	ResolveSkip ResolvePolicy = "skip"
	// ResolveStrict fails the whole listing on the first unresolved reference.
	ResolveStrict ResolvePolicy = "strict"
)

type classLookup interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Class, error)
}

// Options tune the cart behaviour left open by the data model.
type Options struct {
	// UniqueEntries rejects a second entry for the same (classId, userMail) pair.
	UniqueEntries bool
	Policy        ResolvePolicy
}

type Service struct {
	repo    cartrepo.Repository
	classes classLookup
	opts    Options
	logger  *zap.Logger
}

func New(repo cartrepo.Repository, classes classLookup, opts Options, logger *zap.Logger) *Service {
	if opts.Policy == "" {
		opts.Policy = ResolveSkip
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, classes: classes, opts: opts, logger: logger}
}

type AddInput struct {
	ClassID  string `json:"classId" validate:"required"`
	UserMail string `json:"userMail" validate:"required,email"`
}

func (s *Service) AddItem(ctx context.Context, in AddInput) (domain.InsertResult, error) {
	in.ClassID = strings.TrimSpace(in.ClassID)
	in.UserMail = strings.TrimSpace(in.UserMail)
	if err := validation.Struct(in); err != nil {
		return domain.InsertResult{}, err
	}
	if s.opts.UniqueEntries {
		// Not atomic with the insert below; the Mongo unique index closes the gap when present.
		_, err := s.repo.FindOne(ctx, in.ClassID, in.UserMail)
		switch {
		case err == nil:
			return domain.InsertResult{}, fmt.Errorf("class %s already in cart of %s: %w", in.ClassID, in.UserMail, domain.ErrAlreadyExists)
		case !errors.Is(err, domain.ErrNotFound):
			return domain.InsertResult{}, err
		}
	}
	return s.repo.Insert(ctx, domain.CartEntry{ClassID: in.ClassID, UserMail: in.UserMail})
}

func (s *Service) GetItem(ctx context.Context, classID, email string) (*domain.CartEntry, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email required", domain.ErrValidation)
	}
	return s.repo.FindOne(ctx, classID, email)
}

// ListForUser returns the classes referenced by the user's cart, in cart order.
func (s *Service) ListForUser(ctx context.Context, email string) ([]domain.Class, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email required", domain.ErrValidation)
	}
	classIDs, err := s.repo.ClassIDs(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load cart of %s: %w", email, err)
	}
	res, err := Resolve(ctx, s.classes, classIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve cart of %s: %w", email, err)
	}

	if s.opts.Policy == ResolveStrict {
		if len(res.Unparsable) > 0 {
			return nil, fmt.Errorf("%w: cart of %s references %q", domain.ErrInvalidIdentifier, email, res.Unparsable)
		}
		if len(res.Missing) > 0 {
			return nil, fmt.Errorf("%w: cart of %s references %q", domain.ErrDanglingReference, email, res.Missing)
		}
		return res.Classes, nil
	}

	if len(res.Unparsable) > 0 || len(res.Missing) > 0 {
		s.logger.Warn("skipping unresolved cart entries",
			zap.String("user", email),
			zap.Strings("unparsable", res.Unparsable),
			zap.Strings("missing", res.Missing),
		)
	}
	return res.Classes, nil
}

// RemoveItem deletes one entry for classID. An empty email removes the oldest entry of any user.
func (s *Service) RemoveItem(ctx context.Context, classID, email string) (domain.DeleteResult, error) {
	if strings.TrimSpace(classID) == "" {
		return domain.DeleteResult{}, fmt.Errorf("%w: class id required", domain.ErrValidation)
	}
	return s.repo.DeleteOne(ctx, classID, strings.TrimSpace(email))
}
