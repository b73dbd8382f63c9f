package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"sales-portal-backend/internal/database/models"
	"sales-portal-backend/internal/logger"

	"github.com/google/uuid"
)

// Opportunity is a sales-pipeline entity created by converting exactly one
// lead. Name and AccountName are snapshots of the lead taken at conversion
// time, a deliberate denormalization recording the conversion-time state
// rather than a live reference.
type Opportunity struct {
	ID          string                  `json:"id"`
	LeadID      string                  `json:"leadId"`
	Name        string                  `json:"name"`
	Stage       models.OpportunityStage `json:"stage"`
	Amount      *float64                `json:"amount,omitempty"`
	AccountName string                  `json:"accountName"`
}

// OpportunityPatch is a partial update to an opportunity
type OpportunityPatch struct {
	Stage  *models.OpportunityStage `json:"stage,omitempty"`
	Amount *float64                 `json:"amount,omitempty"`
}

// OpportunityLedger is the in-memory collection of opportunities. It is
// constructed once at startup and handed to whoever needs it; no global
// instance exists.
//
// Creation is optimistic: the opportunity is visible immediately, and a
// confirmation step running after a fixed delay removes it again with a
// configured failure probability. Rollbacks are reported through the
// registered callback in addition to a warning log, so the initiating flow
// can tell the user about the loss.
type OpportunityLedger struct {
	mu            sync.Mutex
	opportunities []Opportunity
	onRollback    func(Opportunity)

	confirmDelay time.Duration
	failureRate  float64
	random       func() float64

	log *logger.Logger
}

// Ensure OpportunityLedger implements OpportunityLedgerInterface
var _ OpportunityLedgerInterface = (*OpportunityLedger)(nil)

// NewOpportunityLedger creates an empty ledger. confirmDelay is how long the
// simulated confirmation waits; failureRate in [0,1] is the probability a
// creation is rolled back.
func NewOpportunityLedger(confirmDelay time.Duration, failureRate float64) *OpportunityLedger {
	return &OpportunityLedger{
		confirmDelay: confirmDelay,
		failureRate:  failureRate,
		random:       rand.Float64,
		log:          logger.WithComponent("ledger"),
	}
}

// OnRollback registers the callback invoked after a rolled-back creation.
// The callback runs outside the ledger lock.
func (l *OpportunityLedger) OnRollback(fn func(Opportunity)) {
	l.mu.Lock()
	l.onRollback = fn
	l.mu.Unlock()
}

// Create adds an opportunity for the lead, or returns nil when one already
// exists. The duplicate check and the append happen under one lock, so two
// racing creations for the same lead cannot both succeed.
func (l *OpportunityLedger) Create(leadID, leadName, accountName string, amount *float64) *Opportunity {
	l.mu.Lock()
	if l.hasForLeadLocked(leadID) {
		l.mu.Unlock()
		return nil
	}

	opp := Opportunity{
		ID:          uuid.NewString(),
		LeadID:      leadID,
		Name:        leadName,
		Stage:       models.StageProspecting,
		Amount:      amount,
		AccountName: accountName,
	}
	l.opportunities = append(l.opportunities, opp)
	l.mu.Unlock()

	// The timer captures the id, never an index: the ledger may grow or
	// shrink before the confirmation fires.
	time.AfterFunc(l.confirmDelay, func() {
		l.confirm(opp.ID)
	})

	out := opp
	return &out
}

// confirm simulates the eventual backend acknowledgment of an optimistic
// creation and rolls it back on simulated failure
func (l *OpportunityLedger) confirm(id string) {
	if l.random() >= l.failureRate {
		return
	}

	l.mu.Lock()
	var rolledBack *Opportunity
	for i := range l.opportunities {
		if l.opportunities[i].ID == id {
			opp := l.opportunities[i]
			l.opportunities = append(l.opportunities[:i], l.opportunities[i+1:]...)
			rolledBack = &opp
			break
		}
	}
	notify := l.onRollback
	l.mu.Unlock()

	if rolledBack == nil {
		return
	}

	l.log.WithFields(map[string]interface{}{
		"opportunity_id": rolledBack.ID,
		"lead_id":        rolledBack.LeadID,
	}).Warn("Simulated confirmation failure, opportunity creation rolled back")

	if notify != nil {
		notify(*rolledBack)
	}
}

// Update merges a partial record into the opportunity with the given id and
// reports whether it was found. Unknown ids are a no-op; an empty patch
// changes nothing.
func (l *OpportunityLedger) Update(id string, patch OpportunityPatch) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.opportunities {
		if l.opportunities[i].ID != id {
			continue
		}
		if patch.Stage != nil {
			l.opportunities[i].Stage = *patch.Stage
		}
		if patch.Amount != nil {
			l.opportunities[i].Amount = patch.Amount
		}
		return true
	}
	return false
}

// HasForLead reports whether a live opportunity exists for the lead. Pending
// optimistic creations count until the moment they are rolled back.
func (l *OpportunityLedger) HasForLead(leadID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasForLeadLocked(leadID)
}

func (l *OpportunityLedger) hasForLeadLocked(leadID string) bool {
	for i := range l.opportunities {
		if l.opportunities[i].LeadID == leadID {
			return true
		}
	}
	return false
}

// Get returns a copy of the opportunity with the given id
func (l *OpportunityLedger) Get(id string) (*Opportunity, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.opportunities {
		if l.opportunities[i].ID == id {
			opp := l.opportunities[i]
			return &opp, true
		}
	}
	return nil, false
}

// List returns a snapshot of the ledger, optionally narrowed by stage and by
// a case-insensitive substring match over name or account name
func (l *OpportunityLedger) List(stage, search string) []Opportunity {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Opportunity, 0, len(l.opportunities))
	for _, opp := range l.opportunities {
		if stage != "" && stage != models.StatusAll && string(opp.Stage) != stage {
			continue
		}
		if search != "" && !matchesOpportunitySearch(opp, search) {
			continue
		}
		out = append(out, opp)
	}
	return out
}

func matchesOpportunitySearch(opp Opportunity, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(opp.Name), term) ||
		strings.Contains(strings.ToLower(opp.AccountName), term)
}
