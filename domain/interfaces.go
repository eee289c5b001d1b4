package domain

import "context"

// UserRepository defines account data access operations. Lookups by
// identity always receive the normalized form.
type UserRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByIdentity(ctx context.Context, identity string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Update(ctx context.Context, account *Account) error
}

// MechanicRepository defines directory data access operations.
type MechanicRepository interface {
	Create(ctx context.Context, profile *MechanicProfile) error
	FindAll(ctx context.Context) ([]MechanicProfile, error)
	FindByID(ctx context.Context, id string) (*MechanicProfile, error)
	FindByUserID(ctx context.Context, userID string) (*MechanicProfile, error)
	SetVerified(ctx context.Context, id string, verified bool) error
}

// AuthService defines the registration/login workflow.
type AuthService interface {
	Register(ctx context.Context, identity, password, role string) (*AccountView, error)
	Login(ctx context.Context, identity, password string) (*AuthResult, error)
	SendOTP(ctx context.Context, identity string) error
	VerifyOTPAndRegister(ctx context.Context, identity, code, password, role string) (*AuthResult, error)
	GetUser(ctx context.Context, id string) (*AccountView, error)
}

// OTPService defines the one-time-code workflow. Send refuses rate-limited
// identities before any code is generated; Verify enforces the attempt cap
// and single-use semantics.
type OTPService interface {
	Send(ctx context.Context, identity string, kind IdentityKind) error
	Verify(ctx context.Context, identity, code string) error
}

// PasswordService defines password hashing operations. Comparison goes
// through the hashing library's own comparator, never a manual string
// compare.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations. Tokens are stateless:
// no server-side record exists and only expiry invalidates them.
type TokenService interface {
	Generate(user *AccountView) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationSender delivers a one-time code to a destination. Exactly
// one method; implementations cover real transports and a log-only
// fallback for environments without credentials.
type NotificationSender interface {
	Send(destination, code string) error
}

// Geocoder resolves a free-text place or pincode to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (*Coordinates, error)
}

// EventBus is the directory change-notification channel. Publishing is
// best effort; ordering is not guaranteed.
type EventBus interface {
	Publish(ctx context.Context, event MechanicEvent) error
}
