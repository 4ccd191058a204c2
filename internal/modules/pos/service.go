package pos

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines POS business logic.
type Service interface {
	// Create validates and stores every request in one transaction.
	Create(ctx context.Context, reqs []PosRequest) ([]*Pos, error)
	List(ctx context.Context) ([]*Pos, error)
	Get(ctx context.Context, id uuid.UUID) (*Pos, error)
	GetByName(ctx context.Context, name string) (*Pos, error)
	// Update replaces all mutable fields of the POS with the given id.
	Update(ctx context.Context, id uuid.UUID, req PosRequest) (*Pos, error)
	// Clear removes every POS. Used for test isolation only.
	Clear(ctx context.Context) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, validate *validator.Validate, logger *zap.Logger) Service {
	return &service{repo: repo, validate: validate, logger: logger}
}

func (s *service) Create(ctx context.Context, reqs []PosRequest) ([]*Pos, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}
	for _, req := range reqs {
		if req.ID != nil {
			return nil, ErrIDOnCreate
		}
	}
	if err := validateRequests(s.validate, reqs); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(reqs))
	items := make([]*Pos, 0, len(reqs))
	for _, req := range reqs {
		if _, dup := seen[req.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, req.Name)
		}
		seen[req.Name] = struct{}{}

		p := &Pos{ID: uuid.New()}
		req.apply(p)
		items = append(items, p)
	}

	if err := s.repo.Create(ctx, items); err != nil {
		return nil, err
	}
	s.logger.Info("pos created", zap.Int("count", len(items)))
	return items, nil
}

func (s *service) List(ctx context.Context) ([]*Pos, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Pos{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Pos, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (*Pos, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req PosRequest) (*Pos, error) {
	if req.ID != nil && *req.ID != id {
		return nil, ErrIDMismatch
	}
	if err := validateRequests(s.validate, []PosRequest{req}); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("pos updated", zap.String("pos_id", id.String()))
	return p, nil
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear pos: %w", err)
	}
	return nil
}
