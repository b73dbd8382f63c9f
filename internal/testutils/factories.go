package testutils

import (
	"fmt"
	"time"

	"sales-portal-backend/internal/database/models"
	"sales-portal-backend/internal/service"

	"github.com/google/uuid"
)

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	return &models.Lead{
		ID:        uuid.New().String(),
		Name:      "Jane Cooper",
		Company:   "Acme Corp",
		Email:     "jane.cooper@acme.test",
		Source:    "Website",
		Score:     72,
		Status:    models.LeadStatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithName sets a custom name for the lead
func (f *LeadFactory) WithName(name string) *models.Lead {
	lead := f.Create()
	lead.Name = name
	return lead
}

// WithCompany sets a custom company for the lead
func (f *LeadFactory) WithCompany(company string) *models.Lead {
	lead := f.Create()
	lead.Company = company
	return lead
}

// WithScore sets a custom score for the lead
func (f *LeadFactory) WithScore(score int) *models.Lead {
	lead := f.Create()
	lead.Score = score
	return lead
}

// WithStatus sets a custom status for the lead
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	lead := f.Create()
	lead.Status = status
	return lead
}

// CreateBatch creates n leads with distinct names and descending scores
func (f *LeadFactory) CreateBatch(n int) []*models.Lead {
	leads := make([]*models.Lead, 0, n)
	for i := 0; i < n; i++ {
		lead := f.Create()
		lead.Name = fmt.Sprintf("Lead %02d", i+1)
		lead.Company = fmt.Sprintf("Company %02d", i+1)
		lead.Email = fmt.Sprintf("lead%02d@test.example", i+1)
		lead.Score = 100 - i
		leads = append(leads, lead)
	}
	return leads
}

// OpportunityFactory provides methods to create test Opportunity data
type OpportunityFactory struct{}

// NewOpportunityFactory creates a new OpportunityFactory
func NewOpportunityFactory() *OpportunityFactory {
	return &OpportunityFactory{}
}

// Create creates a test Opportunity with default values
func (f *OpportunityFactory) Create() *service.Opportunity {
	amount := 25000.0
	return &service.Opportunity{
		ID:          uuid.New().String(),
		LeadID:      uuid.New().String(),
		Name:        "Jane Cooper",
		Stage:       models.StageProspecting,
		Amount:      &amount,
		AccountName: "Acme Corp",
	}
}

// WithLead snapshots the given lead into the opportunity
func (f *OpportunityFactory) WithLead(lead *models.Lead) *service.Opportunity {
	opp := f.Create()
	opp.LeadID = lead.ID
	opp.Name = lead.Name
	opp.AccountName = lead.Company
	return opp
}

// WithStage sets a custom stage for the opportunity
func (f *OpportunityFactory) WithStage(stage models.OpportunityStage) *service.Opportunity {
	opp := f.Create()
	opp.Stage = stage
	return opp
}
