package domain

import "time"

// Roles known to the system. Every account carries at least one role;
// RoleCustomer is the default when registration does not specify one.
const (
	RoleCustomer = "customer"
	RoleMechanic = "mechanic"
	RoleAdmin    = "ADMIN"
)

// Account represents a registered user. Identity is always stored in
// normalized form: a lowercased Gmail address or a bare 10-digit phone.
type Account struct {
	ID           string
	Identity     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the account carries the given role tag.
func (a *Account) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AccountView is the public projection of an Account. The password hash
// never leaves the service layer.
type AccountView struct {
	ID       string   `json:"id"`
	Identity string   `json:"identity"`
	Roles    []string `json:"roles"`
}

// View returns the public projection of the account.
func (a *Account) View() *AccountView {
	return &AccountView{ID: a.ID, Identity: a.Identity, Roles: a.Roles}
}

// AuthResult represents a successful authentication outcome.
type AuthResult struct {
	User  *AccountView
	Token string
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair is a usable location. The zero/zero
// point is treated as "unset", matching how profiles without a pinned
// location are stored.
func (c Coordinates) Valid() bool {
	if c.Lat == 0 && c.Lng == 0 {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// MechanicProfile is a repair shop listing. At most one profile exists
// per owning account.
type MechanicProfile struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	ShopName    string      `json:"shopName"`
	ContactName string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Area        string      `json:"area"`
	City        string      `json:"city"`
	Pincode     string      `json:"pincode"`
	Coords      Coordinates `json:"coords"`
	Services    []string    `json:"services"`
	Brands      []string    `json:"brands"`
	Experience  int         `json:"experience"`
	Rating      float64     `json:"rating"`
	Verified    bool        `json:"verified"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SearchQuery is the filter set accepted by the search engine. Reference
// location precedence (explicit > geocoded > viewport center) is the
// caller's policy; by the time a query reaches the engine, RefLocation
// is final.
type SearchQuery struct {
	BrandQuery     string
	LocationQuery  string
	RefLocation    *Coordinates
	SortByDistance bool
}

// SearchResult is a profile that passed the filters, with the distance
// from the reference location attached when distance sorting was applied.
type SearchResult struct {
	MechanicProfile
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// TokenClaims is the decoded payload of a session token.
type TokenClaims struct {
	UserID    string   `json:"user_id"`
	Identity  string   `json:"identity"`
	Roles     []string `json:"roles"`
	IssuedAt  int64    `json:"iat"`
	ExpiresAt int64    `json:"exp"`
}

// MechanicEventType labels directory change notifications.
type MechanicEventType string

const (
	MechanicCreatedEvent  MechanicEventType = "MECHANIC_CREATED"
	MechanicVerifiedEvent MechanicEventType = "MECHANIC_VERIFIED"
)

// MechanicEvent is published on the change-notification channel whenever
// the directory mutates. Delivery order is not guaranteed; listeners use
// it only as a refresh hint.
type MechanicEvent struct {
	Type       MechanicEventType `json:"type"`
	MechanicID string            `json:"mechanicId"`
	OccurredAt time.Time         `json:"occurredAt"`
}
