package repository

import (
	"sales-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeadFilter captures the listing controls the leads data API accepts.
// A Limit of zero or less means "the whole filtered collection".
type LeadFilter struct {
	Status    string
	SortBy    models.SortField
	SortOrder models.SortOrder
	Limit     int
	Offset    int
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	List(filter LeadFilter) ([]models.Lead, int64, error)
	GetByID(id string) (*models.Lead, error)
	Patch(id string, updates map[string]interface{}) (*models.Lead, error)
	Create(lead *models.Lead) error
}

// PreferenceRepositoryInterface defines the persistent key-value store used
// for list preferences. GetItem returns ErrPreferenceNotFound for absent keys.
type PreferenceRepositoryInterface interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
