package mocks

import (
	"context"
	"sync"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// MockUserRepository is an in-memory domain.UserRepository. Individual
// operations can be overridden through the Func fields.
type MockUserRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account // keyed by id

	CreateFunc         func(ctx context.Context, account *domain.Account) error
	FindByIdentityFunc func(ctx context.Context, identity string) (*domain.Account, error)
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Account, error)
	UpdateFunc         func(ctx context.Context, account *domain.Account) error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockUserRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Identity == account.Identity {
			return domain.ErrUserAlreadyExists
		}
	}
	cp := *account
	m.accounts[account.ID] = &cp
	return nil
}

func (m *MockUserRepository) FindByIdentity(ctx context.Context, identity string) (*domain.Account, error) {
	if m.FindByIdentityFunc != nil {
		return m.FindByIdentityFunc(ctx, identity)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Identity == identity {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *account
	m.accounts[account.ID] = &cp
	return nil
}
