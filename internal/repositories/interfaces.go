package repositories

import (
	"context"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// Every method is owner-scoped: a record belonging to another owner is never read,
// updated or deleted. Update and Delete report the collection's not-found error when
// no row matched both id and owner.

// ProfileRepositoryInterface defines the contract for owner profile operations
type ProfileRepositoryInterface interface {
	GetByID(ctx context.Context, ownerID uuid.UUID) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// GoalRepositoryInterface defines the contract for goal repository operations
type GoalRepositoryInterface interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error)
	Create(ctx context.Context, goal *models.Goal) error
	CreateBatch(ctx context.Context, goals []models.Goal) error
	Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
