package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	ErrUserAlreadyExists  = errors.New("User with this identity already exists.")
)

// OTP errors. The messages are user-facing: the workflow boundary returns
// them verbatim in the response envelope.
var (
	ErrOTPNotFound    = errors.New("OTP not found or expired")
	ErrOTPInvalid     = errors.New("Invalid OTP code")
	ErrOTPMaxAttempts = errors.New("Too many attempts. Please request a new OTP")
	ErrOTPRateLimited = errors.New("Too many OTP requests. Please try again in 15 minutes.")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Directory errors
var (
	ErrMechanicNotFound      = errors.New("mechanic not found")
	ErrProfileAlreadyExists  = errors.New("Mechanic profile already exists for this user")
	ErrInvalidCoordinates    = errors.New("Location coordinates are required")
	ErrGeocodeUnknownPlace   = errors.New("unknown place or pincode")
)

// ValidationError carries a specific, user-actionable reason for a
// malformed input. Identity validation needs distinguishable messages
// (wrong email domain vs. not-10-digits vs. empty), so a sentinel is not
// enough here.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given user-facing
// message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
