package service

import (
	"sales-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PreferenceServiceInterface defines the interface for the preference store.
// Save and Clear never fail from the caller's point of view; storage errors
// are logged at the boundary and swallowed.
type PreferenceServiceInterface interface {
	Load() Preferences
	Save(prefs Preferences)
	Clear()
}

// LeadsAPIInterface defines the interface for the remote leads endpoint client
type LeadsAPIInterface interface {
	FetchPage(params EffectiveParams) (*LeadsPage, error)
	UpdateLead(id string, patch LeadPatch) (*models.Lead, error)
}

// OpportunityLedgerInterface defines the interface for the opportunity ledger
type OpportunityLedgerInterface interface {
	Create(leadID, leadName, accountName string, amount *float64) *Opportunity
	Update(id string, patch OpportunityPatch) bool
	HasForLead(leadID string) bool
	Get(id string) (*Opportunity, bool)
	List(stage, search string) []Opportunity
	OnRollback(fn func(Opportunity))
}

// ConversionServiceInterface defines the interface for the conversion use case
type ConversionServiceInterface interface {
	Convert(leadID, leadName, accountName string, amount *float64) ConvertResult
}

// LeadsViewInterface defines the session list-view surface consumed by the
// rendering layer
type LeadsViewInterface interface {
	Snapshot() ViewState
	Params() EffectiveParams
	Refresh()
	SetPage(page int)
	SetSearch(search string)
	SetStatusFilter(status string)
	SetSortBy(field models.SortField)
	SetSortOrder(order models.SortOrder)
	Reset()
	UpdateLead(id string, patch LeadPatch) (*models.Lead, error)
}

// LeadServiceInterface defines the interface backing the leads data API
type LeadServiceInterface interface {
	List(q LeadListQuery) ([]models.Lead, int64, error)
	Get(id string) (*models.Lead, error)
	Patch(id string, req *UpdateLeadRequest) (*models.Lead, error)
}
