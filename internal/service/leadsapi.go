package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sales-portal-backend/internal/config"
	"sales-portal-backend/internal/database/models"
	apperrors "sales-portal-backend/internal/errors"
)

// LeadsPage is one fetched page of the leads collection plus its pagination
// metadata
type LeadsPage struct {
	Leads      []models.Lead `json:"leads"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// LeadPatch is the partial update the detail panel may apply to a lead
type LeadPatch struct {
	Email  *string            `json:"email,omitempty"`
	Status *models.LeadStatus `json:"status,omitempty"`
}

// LeadsAPIService is the REST client for the remote leads endpoint. It is the
// only way the list-view core reads or writes leads.
type LeadsAPIService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// Ensure LeadsAPIService implements LeadsAPIInterface
var _ LeadsAPIInterface = (*LeadsAPIService)(nil)

// NewLeadsAPIService creates a new leads endpoint client
func NewLeadsAPIService(cfg *config.Config) *LeadsAPIService {
	return &LeadsAPIService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchPage returns one page of leads for the effective parameters.
//
// Without a search term the endpoint paginates server-side and reports the
// total in the X-Total-Count header: one round trip, one page of transfer.
// With a search term the whole status-filtered sorted collection is fetched
// and filtered client-side so the term can match name OR company; this is
// O(n) per query and acceptable only because the caller debounces search
// input.
func (s *LeadsAPIService) FetchPage(params EffectiveParams) (*LeadsPage, error) {
	base, err := s.baseURL()
	if err != nil {
		return nil, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}

	if params.Search != "" {
		return s.fetchSearched(base, params, page, limit)
	}
	return s.fetchPaged(base, params, page, limit)
}

func (s *LeadsAPIService) fetchPaged(base *url.URL, params EffectiveParams, page, limit int) (*LeadsPage, error) {
	values := url.Values{}
	values.Set("_page", strconv.Itoa(page))
	values.Set("_limit", strconv.Itoa(limit))
	values.Set("_sort", string(params.SortBy))
	values.Set("_order", string(params.SortOrder))
	if params.Status != "" && params.Status != models.StatusAll {
		values.Set("status", params.Status)
	}

	leads, resp, err := s.getLeads(base.String() + "/leads?" + values.Encode())
	if err != nil {
		return nil, err
	}

	// Missing or malformed header counts as zero, matching an empty collection
	total, _ := strconv.Atoi(resp.Header.Get("X-Total-Count"))

	return &LeadsPage{
		Leads:      leads,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *LeadsAPIService) fetchSearched(base *url.URL, params EffectiveParams, page, limit int) (*LeadsPage, error) {
	values := url.Values{}
	values.Set("_sort", string(params.SortBy))
	values.Set("_order", string(params.SortOrder))
	if params.Status != "" && params.Status != models.StatusAll {
		values.Set("status", params.Status)
	}

	all, _, err := s.getLeads(base.String() + "/leads?" + values.Encode())
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Lead, 0, len(all))
	for _, lead := range all {
		if matchesSearch(lead, params.Search) {
			filtered = append(filtered, lead)
		}
	}

	total := len(filtered)

	// Slice the already-sorted filtered set into the requested page
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &LeadsPage{
		Leads:      filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateLead issues a partial update and returns the authoritative record.
// The caller's cache must stay untouched on failure, so nothing is mutated
// here; the error simply propagates.
func (s *LeadsAPIService) UpdateLead(id string, patch LeadPatch) (*models.Lead, error) {
	base, err := s.baseURL()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead update: %w", err)
	}

	updateURL := base.String() + "/leads/" + url.PathEscape(id)
	req, err := http.NewRequest(http.MethodPatch, updateURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create lead update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lead update request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrLeadNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("lead update failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var updated models.Lead
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated lead: %w", err)
	}
	return &updated, nil
}

func (s *LeadsAPIService) baseURL() (*url.URL, error) {
	base := s.cfg.LeadsAPIBaseURL
	if base == "" {
		return nil, apperrors.ErrLeadsAPIConfigMissing
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	parsed, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid leads API base URL '%s': %w", base, err)
	}
	return parsed, nil
}

func (s *LeadsAPIService) getLeads(fullURL string) ([]models.Lead, *http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create leads request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("leads request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, nil, fmt.Errorf("leads request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var leads []models.Lead
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, nil, fmt.Errorf("failed to decode leads response: %w", err)
	}
	return leads, resp, nil
}

// matchesSearch reports whether the term occurs in the lead's name or
// company, case-insensitively
func matchesSearch(lead models.Lead, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(lead.Name), term) ||
		strings.Contains(strings.ToLower(lead.Company), term)
}

// totalPages is ceil(total/limit); an empty collection has zero pages
func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
