package pos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepo is an in-memory Repository with the same contract as the
// PostgreSQL store: insertion order, unique names, ErrNotFound.
type memoryRepo struct {
	mu        sync.Mutex
	items     []*Pos
	listCalls int
	err       error
}

func newMemoryRepo() *memoryRepo { return &memoryRepo{} }

func (m *memoryRepo) Create(ctx context.Context, items []*Pos) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, p := range items {
		if m.nameTaken(p.Name, uuid.Nil) {
			return ErrDuplicateName
		}
	}
	now := time.Now().UTC()
	for _, p := range items {
		p.CreatedAt, p.UpdatedAt = now, now
		cp := *p
		m.items = append(m.items, &cp)
	}
	return nil
}

func (m *memoryRepo) List(ctx context.Context) ([]*Pos, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*Pos, 0, len(m.items))
	for _, p := range m.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*Pos, error) {
	return m.find(func(p *Pos) bool { return p.ID == id })
}

func (m *memoryRepo) GetByName(ctx context.Context, name string) (*Pos, error) {
	return m.find(func(p *Pos) bool { return p.Name == name })
}

func (m *memoryRepo) find(match func(*Pos) bool) (*Pos, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.items {
		if match(p) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepo) Update(ctx context.Context, p *Pos) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.nameTaken(p.Name, p.ID) {
		return ErrDuplicateName
	}
	for i, stored := range m.items {
		if stored.ID == p.ID {
			p.CreatedAt = stored.CreatedAt
			p.UpdatedAt = time.Now().UTC()
			cp := *p
			m.items[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (m *memoryRepo) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.items = nil
	return nil
}

func (m *memoryRepo) nameTaken(name string, except uuid.UUID) bool {
	for _, p := range m.items {
		if p.Name == name && p.ID != except {
			return true
		}
	}
	return false
}
