package service

import (
	"encoding/json"

	"sales-portal-backend/internal/database/models"
	apperrors "sales-portal-backend/internal/errors"
	"sales-portal-backend/internal/logger"
	"sales-portal-backend/internal/repository"
)

// preferencesKey is the single slot in the key-value store holding the
// serialized list preferences
const preferencesKey = "leads-preferences"

// DefaultPageLimit is the hard default page size; it is part of the default
// preference record but never written by a mutator
const DefaultPageLimit = 10

// Preferences is the persisted subset of the list-view controls. The current
// page is deliberately absent: it is transient per navigation.
type Preferences struct {
	Search    string           `json:"search"`
	Status    string           `json:"status"`
	SortBy    models.SortField `json:"sortBy"`
	SortOrder models.SortOrder `json:"sortOrder"`
	Limit     int              `json:"limit"`
}

// DefaultPreferences returns the hard defaults every resolution starts from
func DefaultPreferences() Preferences {
	return Preferences{
		Search:    "",
		Status:    models.StatusAll,
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
		Limit:     DefaultPageLimit,
	}
}

// PreferenceService persists the user's last-used list filters across
// sessions. Every failure path degrades to hard defaults; nothing here is
// ever surfaced to the user.
type PreferenceService struct {
	store repository.PreferenceRepositoryInterface
	log   *logger.Logger
}

// Ensure PreferenceService implements PreferenceServiceInterface
var _ PreferenceServiceInterface = (*PreferenceService)(nil)

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(store repository.PreferenceRepositoryInterface) *PreferenceService {
	return &PreferenceService{
		store: store,
		log:   logger.WithComponent("preferences"),
	}
}

// Load returns the stored preference record merged over hard defaults. A
// missing or unparseable record counts as absent: defaults win and the
// failure is logged only.
func (s *PreferenceService) Load() Preferences {
	prefs := DefaultPreferences()

	raw, err := s.store.GetItem(preferencesKey)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			s.log.WithError(err).Warn("Failed to load leads preferences")
		}
		return prefs
	}

	// Unmarshaling into a copy of the defaults merges stored fields over
	// default values; absent fields keep their defaults.
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		s.log.WithError(err).Warn("Failed to parse stored leads preferences, falling back to defaults")
		return DefaultPreferences()
	}

	return normalizePreferences(prefs)
}

// Save persists the full preference record. Persistence failure is non-fatal
// and logged only.
func (s *PreferenceService) Save(prefs Preferences) {
	data, err := json.Marshal(normalizePreferences(prefs))
	if err != nil {
		s.log.WithError(err).Warn("Failed to encode leads preferences")
		return
	}
	if err := s.store.SetItem(preferencesKey, string(data)); err != nil {
		s.log.WithError(err).Warn("Failed to save leads preferences")
	}
}

// Clear removes the stored record entirely
func (s *PreferenceService) Clear() {
	if err := s.store.RemoveItem(preferencesKey); err != nil {
		s.log.WithError(err).Warn("Failed to clear leads preferences")
	}
}

// normalizePreferences replaces out-of-range fields from a stored record with
// their defaults so a corrupt store can never produce invalid parameters
func normalizePreferences(prefs Preferences) Preferences {
	defaults := DefaultPreferences()
	if prefs.Status != models.StatusAll && !models.LeadStatus(prefs.Status).IsValid() {
		prefs.Status = defaults.Status
	}
	if !prefs.SortBy.IsValid() {
		prefs.SortBy = defaults.SortBy
	}
	if !prefs.SortOrder.IsValid() {
		prefs.SortOrder = defaults.SortOrder
	}
	if prefs.Limit < 1 {
		prefs.Limit = defaults.Limit
	}
	return prefs
}
