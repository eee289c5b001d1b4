package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coordinates
		want   bool
	}{
		{"bengaluru", Coordinates{Lat: 12.9716, Lng: 77.5946}, true},
		{"zero zero is unset", Coordinates{}, false},
		{"zero lat nonzero lng", Coordinates{Lat: 0, Lng: 77.59}, true},
		{"lat above range", Coordinates{Lat: 90.01, Lng: 10}, false},
		{"lat below range", Coordinates{Lat: -90.01, Lng: 10}, false},
		{"lng above range", Coordinates{Lat: 10, Lng: 180.01}, false},
		{"lng below range", Coordinates{Lat: 10, Lng: -180.01}, false},
		{"boundary values", Coordinates{Lat: -90, Lng: 180}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coords.Valid())
		})
	}
}

func TestAccountHasRole(t *testing.T) {
	acc := &Account{Roles: []string{RoleCustomer, RoleMechanic}}

	assert.True(t, acc.HasRole(RoleCustomer))
	assert.True(t, acc.HasRole(RoleMechanic))
	assert.False(t, acc.HasRole(RoleAdmin))
}

func TestAccountViewOmitsPasswordHash(t *testing.T) {
	acc := &Account{
		ID:           "u-1",
		Identity:     "rider@gmail.com",
		PasswordHash: "$2a$10$secret",
		Roles:        []string{RoleCustomer},
	}

	view := acc.View()
	assert.Equal(t, "u-1", view.ID)
	assert.Equal(t, "rider@gmail.com", view.Identity)
	assert.Equal(t, []string{RoleCustomer}, view.Roles)
}
