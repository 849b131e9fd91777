package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("profile not found")

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &profileRepository{db: db}
}

// GetByID retrieves the profile whose id is the owner id
func (r *profileRepository) GetByID(ctx context.Context, ownerID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", ownerID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Upsert inserts the profile or refreshes its mutable columns
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "base_currency", "updated_at"}),
	}).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
