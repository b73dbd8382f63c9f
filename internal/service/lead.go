package service

import (
	"fmt"

	"sales-portal-backend/internal/database/models"
	apperrors "sales-portal-backend/internal/errors"
	"sales-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LeadService backs the leads data API: json-server-shaped listing plus
// partial update of the editable fields
type LeadService struct {
	repo      repository.LeadRepositoryInterface
	validator *validator.Validate
}

// Ensure LeadService implements LeadServiceInterface
var _ LeadServiceInterface = (*LeadService)(nil)

// NewLeadService creates a new LeadService
func NewLeadService(repo repository.LeadRepositoryInterface, validator *validator.Validate) *LeadService {
	return &LeadService{
		repo:      repo,
		validator: validator,
	}
}

// LeadListQuery captures the data API's listing parameters. Limit of zero or
// less returns the whole filtered collection in one response.
type LeadListQuery struct {
	Page      int
	Limit     int
	SortBy    models.SortField
	SortOrder models.SortOrder
	Status    string
}

// List returns the requested slice of the leads collection plus the
// unpaginated total of the status-filtered set
func (s *LeadService) List(q LeadListQuery) ([]models.Lead, int64, error) {
	if q.Status != "" && q.Status != models.StatusAll && !models.LeadStatus(q.Status).IsValid() {
		return nil, 0, apperrors.NewValidationError("status", fmt.Sprintf("unknown lead status %q", q.Status))
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	filter := repository.LeadFilter{
		Status:    q.Status,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
	if q.Limit > 0 {
		filter.Limit = q.Limit
		filter.Offset = (page - 1) * q.Limit
	}

	leads, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, total, nil
}

// Get returns a single lead by ID
func (s *LeadService) Get(id string) (*models.Lead, error) {
	return s.repo.GetByID(id)
}

// UpdateLeadRequest is the editable subset of a lead. Anything else on the
// record is immutable once seeded.
type UpdateLeadRequest struct {
	Email  *string            `json:"email" validate:"omitempty,email"`
	Status *models.LeadStatus `json:"status"`
}

// Patch applies a partial update and returns the authoritative record.
// Validation runs before anything reaches the repository.
func (s *LeadService) Patch(id string, req *UpdateLeadRequest) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("email", "must be a valid email address")
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown lead status %q", *req.Status))
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	return s.repo.Patch(id, updates)
}
