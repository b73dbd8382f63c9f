package repository

import (
	"errors"

	"sales-portal-backend/internal/database/models"
	apperrors "sales-portal-backend/internal/errors"

	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// Ensure LeadRepository implements LeadRepositoryInterface
var _ LeadRepositoryInterface = (*LeadRepository)(nil)

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// List retrieves leads matching the filter along with the unpaginated total.
// Sort column and direction are whitelisted through the enum types; anything
// else falls back to score descending.
func (r *LeadRepository) List(filter LeadFilter) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{})
	if filter.Status != "" && filter.Status != models.StatusAll {
		query = query.Where("status = ?", filter.Status)
	}

	// Count the status-filtered collection before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filter.SortBy
	if !sortBy.IsValid() {
		sortBy = models.SortByScore
	}
	sortOrder := filter.SortOrder
	if !sortOrder.IsValid() {
		sortOrder = models.SortDesc
	}
	query = query.Order(string(sortBy) + " " + string(sortOrder))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := query.Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// GetByID retrieves a lead by its id
func (r *LeadRepository) GetByID(id string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// Patch applies a partial update and returns the authoritative record
func (r *LeadRepository) Patch(id string, updates map[string]interface{}) (*models.Lead, error) {
	lead, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(lead).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(id)
}

// Create inserts a new lead (seed data only; leads are not created at runtime)
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}
