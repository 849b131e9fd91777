package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("goal not found")

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{db: db}
}

// ListByOwner retrieves all goals for an owner, nearest target date first
func (r *goalRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error) {
	goals := []models.Goal{}
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("target_date ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *goalRepository) CreateBatch(ctx context.Context, goals []models.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&goals).Error; err != nil {
			return fmt.Errorf("failed to create batch goals: %w", err)
		}
		return nil
	})
}

func (r *goalRepository) Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]interface{}) error {
	rows, err := updateOwned(ctx, r.db, &models.Goal{}, ownerID, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	rows, err := deleteOwned(ctx, r.db, &models.Goal{}, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}
