package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// updateOwned applies patch to the row matching both id and owner and returns the
// number of rows touched. updated_at is stamped by gorm.
func updateOwned(ctx context.Context, db *gorm.DB, model interface{}, ownerID, id uuid.UUID, patch map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).
		Model(model).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(patch)
	return result.RowsAffected, result.Error
}

func deleteOwned(ctx context.Context, db *gorm.DB, model interface{}, ownerID, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(model)
	return result.RowsAffected, result.Error
}
