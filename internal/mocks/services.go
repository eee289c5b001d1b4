package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// MockPasswordService hashes with a recognisable prefix instead of
// bcrypt to keep tests fast.
type MockPasswordService struct{}

func NewMockPasswordService() *MockPasswordService { return &MockPasswordService{} }

func (m *MockPasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	return hashedPassword == "hashed:"+password
}

// MockTokenService issues predictable tokens and remembers the claims
// behind them.
type MockTokenService struct {
	mu     sync.Mutex
	issued map[string]*domain.TokenClaims

	GenerateFunc func(user *domain.AccountView) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{issued: make(map[string]*domain.TokenClaims)}
}

func (m *MockTokenService) Generate(user *domain.AccountView) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	token := "token-" + user.ID
	m.mu.Lock()
	m.issued[token] = &domain.TokenClaims{UserID: user.ID, Identity: user.Identity, Roles: user.Roles}
	m.mu.Unlock()
	return token, nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if claims, ok := m.issued[token]; ok {
		return claims, nil
	}
	if strings.HasPrefix(token, "token-") {
		return &domain.TokenClaims{UserID: strings.TrimPrefix(token, "token-")}, nil
	}
	return nil, domain.ErrTokenInvalid
}

// MockOTPService tracks sends and accepts a fixed code.
type MockOTPService struct {
	mu       sync.Mutex
	sends    []string
	Accepted string

	SendFunc   func(ctx context.Context, identity string, kind domain.IdentityKind) error
	VerifyFunc func(ctx context.Context, identity, code string) error
}

func NewMockOTPService() *MockOTPService {
	return &MockOTPService{Accepted: "123456"}
}

func (m *MockOTPService) Send(ctx context.Context, identity string, kind domain.IdentityKind) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, identity, kind)
	}
	m.mu.Lock()
	m.sends = append(m.sends, identity)
	m.mu.Unlock()
	return nil
}

func (m *MockOTPService) Verify(ctx context.Context, identity, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, identity, code)
	}
	if code != m.Accepted {
		return domain.ErrOTPInvalid
	}
	return nil
}

// Sends returns the identities OTPs were sent to.
func (m *MockOTPService) Sends() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sends))
	copy(out, m.sends)
	return out
}

// MockEventBus collects published events.
type MockEventBus struct {
	mu     sync.Mutex
	events []domain.MechanicEvent

	PublishFunc func(ctx context.Context, event domain.MechanicEvent) error
}

func NewMockEventBus() *MockEventBus { return &MockEventBus{} }

func (m *MockEventBus) Publish(ctx context.Context, event domain.MechanicEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
	return nil
}

// Events returns a copy of everything published so far.
func (m *MockEventBus) Events() []domain.MechanicEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MechanicEvent, len(m.events))
	copy(out, m.events)
	return out
}

// MockGeocoder resolves from a fixed table.
type MockGeocoder struct {
	Places map[string]domain.Coordinates

	ResolveFunc func(ctx context.Context, query string) (*domain.Coordinates, error)
}

func NewMockGeocoder() *MockGeocoder {
	return &MockGeocoder{Places: make(map[string]domain.Coordinates)}
}

func (m *MockGeocoder) Resolve(ctx context.Context, query string) (*domain.Coordinates, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, query)
	}
	if coords, ok := m.Places[strings.ToLower(strings.TrimSpace(query))]; ok {
		return &coords, nil
	}
	return nil, domain.ErrGeocodeUnknownPlace
}
