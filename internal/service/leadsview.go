package service

import (
	"sync"
	"time"

	"sales-portal-backend/internal/database/models"
)

// ViewState is the list-view state the rendering layer consumes
type ViewState struct {
	Leads      []models.Lead `json:"leads"`
	Loading    bool          `json:"loading"`
	Error      string        `json:"error,omitempty"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// LeadsViewService owns the parameter resolver and the fetched list state for
// one session.
//
// Every initiated fetch is tagged with a generation counter and completions
// are applied only while their generation is still the newest, so a slow
// early response can never overwrite the result of a later one. Free-text
// search is debounced: each keystroke stops the previous quiet-period timer
// and starts a new one; only the final pending timer fires a fetch.
type LeadsViewService struct {
	mu sync.Mutex

	resolver *ParamResolver
	api      LeadsAPIInterface

	state      ViewState
	generation uint64
	onChange   func(ViewState)

	debounce     *time.Timer
	debounceWait time.Duration
}

// Ensure LeadsViewService implements LeadsViewInterface
var _ LeadsViewInterface = (*LeadsViewService)(nil)

// NewLeadsViewService creates a new LeadsViewService. debounceWait is the
// search quiet period.
func NewLeadsViewService(resolver *ParamResolver, api LeadsAPIInterface, debounceWait time.Duration) *LeadsViewService {
	return &LeadsViewService{
		resolver:     resolver,
		api:          api,
		debounceWait: debounceWait,
		state:        ViewState{Leads: []models.Lead{}},
	}
}

// OnChange registers a callback observing every state transition. The
// callback runs outside the view lock.
func (s *LeadsViewService) OnChange(fn func(ViewState)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns a copy of the current view state
func (s *LeadsViewService) Snapshot() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Params returns the current effective parameter set
func (s *LeadsViewService) Params() EffectiveParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Params()
}

// Refresh initiates a fetch for the current effective parameters. This is
// also the only recovery path after a failed fetch.
func (s *LeadsViewService) Refresh() {
	s.fetch()
}

// SetPage navigates to another page and fetches immediately
func (s *LeadsViewService) SetPage(page int) {
	s.mu.Lock()
	s.resolver.SetPage(page)
	s.mu.Unlock()
	s.fetch()
}

// SetSearch records the term immediately but fetches only after the quiet
// period elapses without another keystroke
func (s *LeadsViewService) SetSearch(search string) {
	s.mu.Lock()
	s.resolver.SetSearch(search)
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.debounceWait, s.fetch)
	s.mu.Unlock()
}

// SetStatusFilter changes the status filter and fetches immediately
func (s *LeadsViewService) SetStatusFilter(status string) {
	s.mu.Lock()
	s.resolver.SetStatusFilter(status)
	s.mu.Unlock()
	s.fetch()
}

// SetSortBy changes the sort column and fetches immediately
func (s *LeadsViewService) SetSortBy(field models.SortField) {
	s.mu.Lock()
	s.resolver.SetSortBy(field)
	s.mu.Unlock()
	s.fetch()
}

// SetSortOrder changes the sort direction and fetches immediately
func (s *LeadsViewService) SetSortOrder(order models.SortOrder) {
	s.mu.Lock()
	s.resolver.SetSortOrder(order)
	s.mu.Unlock()
	s.fetch()
}

// Reset restores defaults, cancels any pending debounced search, and fetches
// immediately
func (s *LeadsViewService) Reset() {
	s.mu.Lock()
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.resolver.Reset()
	s.mu.Unlock()
	s.fetch()
}

// UpdateLead pushes a partial lead update through the API and merges the
// authoritative record into the current page by id. On failure the page is
// left untouched, the error string is surfaced on the view state, and the
// error propagates to the caller.
func (s *LeadsViewService) UpdateLead(id string, patch LeadPatch) (*models.Lead, error) {
	updated, err := s.api.UpdateLead(id, patch)
	if err != nil {
		s.mu.Lock()
		s.state.Error = err.Error()
		notify := s.onChange
		snapshot := s.snapshotLocked()
		s.mu.Unlock()
		if notify != nil {
			notify(snapshot)
		}
		return nil, err
	}

	s.mu.Lock()
	for i := range s.state.Leads {
		if s.state.Leads[i].ID == updated.ID {
			s.state.Leads[i] = *updated
			break
		}
	}
	notify := s.onChange
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	if notify != nil {
		notify(snapshot)
	}

	return updated, nil
}

func (s *LeadsViewService) fetch() {
	s.mu.Lock()
	params := s.resolver.Params()
	s.generation++
	gen := s.generation
	s.state.Loading = true
	s.state.Error = ""
	notify := s.onChange
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	if notify != nil {
		notify(snapshot)
	}

	go func() {
		page, err := s.api.FetchPage(params)
		s.apply(gen, page, err)
	}()
}

func (s *LeadsViewService) apply(gen uint64, page *LeadsPage, err error) {
	s.mu.Lock()
	if gen != s.generation {
		// A newer fetch was initiated while this one was in flight
		s.mu.Unlock()
		return
	}

	s.state.Loading = false
	if err != nil {
		s.state.Leads = []models.Lead{}
		s.state.Total = 0
		s.state.TotalPages = 0
		s.state.Error = err.Error()
	} else {
		s.state.Leads = page.Leads
		s.state.Total = page.Total
		s.state.TotalPages = page.TotalPages
		s.state.Error = ""
	}

	notify := s.onChange
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	if notify != nil {
		notify(snapshot)
	}
}

func (s *LeadsViewService) snapshotLocked() ViewState {
	out := s.state
	out.Leads = append([]models.Lead(nil), s.state.Leads...)
	return out
}
