package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBAccount{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func testAccount(identity string) *domain.Account {
	return &domain.Account{
		ID:           uuid.NewString(),
		Identity:     identity,
		PasswordHash: "hashed_password",
		Roles:        []string{domain.RoleCustomer},
	}
}

func TestUserRepository_CreateAndFindByIdentity(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	account := testAccount("rider@gmail.com")
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByIdentity(ctx, "rider@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, account.Identity, found.Identity)
	assert.Equal(t, account.PasswordHash, found.PasswordHash)
	assert.Equal(t, []string{domain.RoleCustomer}, found.Roles)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestUserRepository_FindByIdentityNotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	found, err := repo.FindByIdentity(context.Background(), "ghost@gmail.com")
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	account := testAccount("9876543210")
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", found.Identity)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_DuplicateIdentityFails(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testAccount("dup@gmail.com")))
	err := repo.Create(ctx, testAccount("dup@gmail.com"))
	assert.Error(t, err)
}

func TestUserRepository_UpdateRoles(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	account := testAccount("promote@gmail.com")
	require.NoError(t, repo.Create(ctx, account))

	account.Roles = []string{domain.RoleCustomer, domain.RoleMechanic}
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleCustomer, domain.RoleMechanic}, found.Roles)
}
