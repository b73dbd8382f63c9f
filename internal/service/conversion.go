package service

// ConvertResult reports the immediate outcome of a conversion attempt. OK is
// false both when an opportunity already exists for the lead and when the
// duplicate slipped in between the pre-check and the creation. A later
// confirmation rollback is delivered through the ledger's rollback callback,
// never through this result.
type ConvertResult struct {
	OK          bool         `json:"ok"`
	Opportunity *Opportunity `json:"opportunity,omitempty"`
}

// ConversionService is the use-case glue between the rendering layer's
// convert action and the opportunity ledger
type ConversionService struct {
	ledger OpportunityLedgerInterface
}

// Ensure ConversionService implements ConversionServiceInterface
var _ ConversionServiceInterface = (*ConversionService)(nil)

// NewConversionService creates a new ConversionService
func NewConversionService(ledger OpportunityLedgerInterface) *ConversionService {
	return &ConversionService{ledger: ledger}
}

// Convert creates an opportunity from the lead snapshot. No retries: failure
// reporting is immediate and synchronous relative to the initiating action.
func (s *ConversionService) Convert(leadID, leadName, accountName string, amount *float64) ConvertResult {
	// Distinct "already exists" case, rejected before touching the ledger
	if s.ledger.HasForLead(leadID) {
		return ConvertResult{OK: false}
	}

	opp := s.ledger.Create(leadID, leadName, accountName, amount)
	if opp == nil {
		// A duplicate won the race between the check and the create
		return ConvertResult{OK: false}
	}

	return ConvertResult{OK: true, Opportunity: opp}
}
