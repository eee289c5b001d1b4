package mocks

import (
	"context"
	"sync"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// MockMechanicRepository is an in-memory domain.MechanicRepository that
// preserves insertion order, matching the directory's natural ordering.
type MockMechanicRepository struct {
	mu       sync.Mutex
	profiles []domain.MechanicProfile

	CreateFunc  func(ctx context.Context, profile *domain.MechanicProfile) error
	FindAllFunc func(ctx context.Context) ([]domain.MechanicProfile, error)
}

func NewMockMechanicRepository(seed ...domain.MechanicProfile) *MockMechanicRepository {
	return &MockMechanicRepository{profiles: seed}
}

func (m *MockMechanicRepository) Create(ctx context.Context, profile *domain.MechanicProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = append(m.profiles, *profile)
	return nil
}

func (m *MockMechanicRepository) FindAll(ctx context.Context) ([]domain.MechanicProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MechanicProfile, len(m.profiles))
	copy(out, m.profiles)
	return out, nil
}

func (m *MockMechanicRepository) FindByID(ctx context.Context, id string) (*domain.MechanicProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrMechanicNotFound
}

func (m *MockMechanicRepository) FindByUserID(ctx context.Context, userID string) (*domain.MechanicProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.UserID == userID {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrMechanicNotFound
}

func (m *MockMechanicRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.profiles {
		if m.profiles[i].ID == id {
			m.profiles[i].Verified = verified
			return nil
		}
	}
	return domain.ErrMechanicNotFound
}
