package repository

import (
	"errors"

	"sales-portal-backend/internal/database/models"
	apperrors "sales-portal-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository implements the persistent key-value store contract on
// top of a single preferences table
type PreferenceRepository struct {
	db *gorm.DB
}

// Ensure PreferenceRepository implements PreferenceRepositoryInterface
var _ PreferenceRepositoryInterface = (*PreferenceRepository)(nil)

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetItem returns the stored value for a key, or ErrPreferenceNotFound
func (r *PreferenceRepository) GetItem(key string) (string, error) {
	var pref models.Preference
	if err := r.db.First(&pref, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrPreferenceNotFound
		}
		return "", err
	}
	return pref.Value, nil
}

// SetItem writes a value for a key, replacing any previous value
func (r *PreferenceRepository) SetItem(key, value string) error {
	pref := models.Preference{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

// RemoveItem deletes a key; removing an absent key is not an error
func (r *PreferenceRepository) RemoveItem(key string) error {
	return r.db.Delete(&models.Preference{}, "key = ?", key).Error
}
