package models

// LeadStatus defines the qualification states of a lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusUnqualified LeadStatus = "Unqualified"
)

// StatusAll is the filter value that matches every lead status
const StatusAll = "All"

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusUnqualified:
		return true
	}
	return false
}

// OpportunityStage defines the pipeline stages of an opportunity
type OpportunityStage string

const (
	StageProspecting   OpportunityStage = "Prospecting"
	StageQualification OpportunityStage = "Qualification"
	StageProposal      OpportunityStage = "Proposal"
	StageNegotiation   OpportunityStage = "Negotiation"
	StageClosedWon     OpportunityStage = "Closed Won"
	StageClosedLost    OpportunityStage = "Closed Lost"
)

// IsValid checks if the OpportunityStage is valid
func (s OpportunityStage) IsValid() bool {
	switch s {
	case StageProspecting, StageQualification, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// SortField defines the lead columns the list view can be ordered by
type SortField string

const (
	SortByScore   SortField = "score"
	SortByName    SortField = "name"
	SortByCompany SortField = "company"
)

// IsValid checks if the SortField is valid
func (f SortField) IsValid() bool {
	switch f {
	case SortByScore, SortByName, SortByCompany:
		return true
	}
	return false
}

// SortOrder defines the direction of a sorted lead listing
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid checks if the SortOrder is valid
func (o SortOrder) IsValid() bool {
	switch o {
	case SortAsc, SortDesc:
		return true
	}
	return false
}
