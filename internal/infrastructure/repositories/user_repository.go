package repositories

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID           string         `gorm:"primaryKey;size:36"`
	Identity     string         `gorm:"uniqueIndex;size:255"`
	PasswordHash string         `gorm:"column:password"`
	Roles        string         `gorm:"size:255"`
	CreatedAt    time.Time      `gorm:"index"`
	UpdatedAt    time.Time      `gorm:"index"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	return r.db.WithContext(ctx).Create(dbAccount).Error
}

// FindByIdentity implements domain.UserRepository
func (r *UserRepositoryImpl) FindByIdentity(ctx context.Context, identity string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("identity = ?", identity).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(account)).Error
}

func (r *UserRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	roles, _ := json.Marshal(account.Roles)
	return &DBAccount{
		ID:           account.ID,
		Identity:     account.Identity,
		PasswordHash: account.PasswordHash,
		Roles:        string(roles),
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	var roles []string
	_ = json.Unmarshal([]byte(dbAccount.Roles), &roles)
	return &domain.Account{
		ID:           dbAccount.ID,
		Identity:     dbAccount.Identity,
		PasswordHash: dbAccount.PasswordHash,
		Roles:        roles,
		CreatedAt:    dbAccount.CreatedAt,
		UpdatedAt:    dbAccount.UpdatedAt,
	}
}
