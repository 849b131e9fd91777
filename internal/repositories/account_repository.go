package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// ListByOwner retrieves all accounts for an owner ordered by name
func (r *accountRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error) {
	accounts := []models.Account{}
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update applies a normalized patch to an owner's account
func (r *accountRepository) Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]interface{}) error {
	rows, err := updateOwned(ctx, r.db, &models.Account{}, ownerID, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Delete removes an owner's account. Transactions referencing it are left in place.
func (r *accountRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	rows, err := deleteOwned(ctx, r.db, &models.Account{}, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// CountByOwner counts the accounts held by an owner
func (r *accountRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
