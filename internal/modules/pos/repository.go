package pos

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for POS records.
type Repository interface {
	// Create stores all records atomically and fills in their timestamps.
	Create(ctx context.Context, items []*Pos) error
	List(ctx context.Context) ([]*Pos, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Pos, error)
	GetByName(ctx context.Context, name string) (*Pos, error)
	// Update replaces the mutable fields of p and refreshes its timestamps.
	Update(ctx context.Context, p *Pos) error
	DeleteAll(ctx context.Context) error
}
