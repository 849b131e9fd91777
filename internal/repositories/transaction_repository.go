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
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ListByOwner retrieves all transactions for an owner, newest first
func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// Update applies a normalized patch to an owner's transaction
func (r *transactionRepository) Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]interface{}) error {
	rows, err := updateOwned(ctx, r.db, &models.Transaction{}, ownerID, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes an owner's transaction
func (r *transactionRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	rows, err := deleteOwned(ctx, r.db, &models.Transaction{}, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
