package domain

import "strings"

// IdentityKind classifies a raw identity string.
type IdentityKind string

const (
	IdentityEmail   IdentityKind = "email"
	IdentityPhone   IdentityKind = "phone"
	IdentityUnknown IdentityKind = "unknown"
)

// gmailSuffix is a narrow business rule, not a general email validator:
// only Gmail addresses are accepted for email identities.
const gmailSuffix = "@gmail.com"

// IsValidGmail reports whether the input is an acceptable email identity
// after trimming and lowercasing.
func IsValidGmail(email string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	return strings.HasSuffix(trimmed, gmailSuffix) && len(trimmed) > 10
}

// IsValidIndianPhone reports whether the input is a valid Indian mobile
// number: exactly 10 digits starting with 6-9 after stripping a leading
// +91 or 0.
func IsValidIndianPhone(phone string) bool {
	normalized := NormalizePhone(phone)
	if len(normalized) != 10 {
		return false
	}
	if normalized[0] < '6' || normalized[0] > '9' {
		return false
	}
	for i := 1; i < len(normalized); i++ {
		if normalized[i] < '0' || normalized[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizePhone strips a leading +91 country code or a leading zero and
// returns the bare digits. Applying it twice returns the same value.
func NormalizePhone(phone string) string {
	normalized := strings.TrimSpace(phone)
	if strings.HasPrefix(normalized, "+91") {
		normalized = normalized[3:]
	}
	if strings.HasPrefix(normalized, "0") {
		normalized = normalized[1:]
	}
	return normalized
}

// ClassifyIdentity reports whether the input is an email, a phone, or
// neither.
func ClassifyIdentity(identity string) IdentityKind {
	if IsValidGmail(identity) {
		return IdentityEmail
	}
	if IsValidIndianPhone(identity) {
		return IdentityPhone
	}
	return IdentityUnknown
}

// NormalizeIdentity validates and normalizes a raw identity. Two inputs
// that normalize to the same value are the same account identity. The
// returned error is a ValidationError with a user-facing reason specific
// to what failed.
func NormalizeIdentity(identity string) (string, IdentityKind, error) {
	switch ClassifyIdentity(identity) {
	case IdentityEmail:
		return strings.ToLower(strings.TrimSpace(identity)), IdentityEmail, nil
	case IdentityPhone:
		return NormalizePhone(identity), IdentityPhone, nil
	}
	return "", IdentityUnknown, NewValidationError(identityErrorMessage(identity))
}

// identityErrorMessage picks a specific reason for an invalid identity.
func identityErrorMessage(identity string) string {
	if strings.TrimSpace(identity) == "" {
		return "Please enter an email or phone number"
	}
	if strings.Contains(identity, "@") {
		return "Only Gmail addresses (@gmail.com) are allowed"
	}
	return "Please enter a valid 10-digit Indian phone number"
}
