package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// minPasswordLength applies to registration only; existing credentials
// are never re-validated against it.
const minPasswordLength = 6

// AuthServiceImpl implements domain.AuthService.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
}

// NewAuthService creates the registration/login workflow service.
func NewAuthService(userRepo domain.UserRepository, passwordSvc domain.PasswordService, tokenSvc domain.TokenService, otpSvc domain.OTPService) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
	}
}

// Register implements domain.AuthService. Uniqueness is enforced on the
// normalized identity, so differently formatted inputs that normalize to
// the same value collide.
func (s *AuthServiceImpl) Register(ctx context.Context, identity, password, role string) (*domain.AccountView, error) {
	normalized, _, err := domain.NormalizeIdentity(identity)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("Password must be at least 6 characters")
	}

	existing, err := s.userRepo.FindByIdentity(ctx, normalized)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = domain.RoleCustomer
	}
	now := time.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Identity:     normalized,
		PasswordHash: hash,
		Roles:        []string{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account.View(), nil
}

// Login implements domain.AuthService. Unknown identity and wrong
// password return the same error so a caller cannot learn which half
// failed.
func (s *AuthServiceImpl) Login(ctx context.Context, identity, password string) (*domain.AuthResult, error) {
	normalized, _, err := domain.NormalizeIdentity(identity)
	if err != nil {
		return nil, err
	}

	account, err := s.userRepo.FindByIdentity(ctx, normalized)
	if err != nil || account == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	view := account.View()
	token, err := s.tokenSvc.Generate(view)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &domain.AuthResult{User: view, Token: token}, nil
}

// SendOTP implements domain.AuthService.
func (s *AuthServiceImpl) SendOTP(ctx context.Context, identity string) error {
	normalized, kind, err := domain.NormalizeIdentity(identity)
	if err != nil {
		return err
	}
	return s.otpSvc.Send(ctx, normalized, kind)
}

// VerifyOTPAndRegister implements domain.AuthService: a successful code
// check consumes the code, registers the account and logs it in.
func (s *AuthServiceImpl) VerifyOTPAndRegister(ctx context.Context, identity, code, password, role string) (*domain.AuthResult, error) {
	normalized, _, err := domain.NormalizeIdentity(identity)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Verify(ctx, normalized, code); err != nil {
		return nil, err
	}

	view, err := s.Register(ctx, normalized, password, role)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.Generate(view)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &domain.AuthResult{User: view, Token: token}, nil
}

// GetUser implements domain.AuthService.
func (s *AuthServiceImpl) GetUser(ctx context.Context, id string) (*domain.AccountView, error) {
	account, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.View(), nil
}
