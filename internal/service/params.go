package service

import (
	"net/url"
	"strconv"

	"sales-portal-backend/internal/database/models"
)

// Query parameter names shared between the address-bar state and the
// rendering layer
const (
	paramPage      = "page"
	paramLimit     = "limit"
	paramSearch    = "search"
	paramStatus    = "status"
	paramSortBy    = "sortBy"
	paramSortOrder = "sortOrder"
)

// QueryState is the address-bar abstraction: a readable and writable
// multi-key string map. The real navigation implementation records a history
// entry on every write; that side effect is invisible at this level and
// happens synchronously with the mutation.
type QueryState interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Del(key string)
}

// ValuesQueryState adapts url.Values to QueryState
type ValuesQueryState struct {
	values url.Values
}

// NewValuesQueryState wraps the given query values; nil means an empty query
func NewValuesQueryState(values url.Values) *ValuesQueryState {
	if values == nil {
		values = url.Values{}
	}
	return &ValuesQueryState{values: values}
}

func (s *ValuesQueryState) Get(key string) (string, bool) {
	if !s.values.Has(key) {
		return "", false
	}
	return s.values.Get(key), true
}

func (s *ValuesQueryState) Set(key, value string) {
	s.values.Set(key, value)
}

func (s *ValuesQueryState) Del(key string) {
	s.values.Del(key)
}

// Values exposes the underlying query for encoding back into an address bar
func (s *ValuesQueryState) Values() url.Values {
	return s.values
}

// EffectiveParams is the resolved, precedence-merged set of list-view
// controls governing one leads fetch
type EffectiveParams struct {
	Page      int              `json:"page"`
	Limit     int              `json:"limit"`
	Search    string           `json:"search"`
	Status    string           `json:"status"`
	SortBy    models.SortField `json:"sortBy"`
	SortOrder models.SortOrder `json:"sortOrder"`
}

// ResolveParams merges the three layers per field: URL query value if present
// and well-formed, else stored preference, else hard default. It is a pure
// function of its inputs; the page has no preference layer.
func ResolveParams(query QueryState, prefs Preferences) EffectiveParams {
	prefs = normalizePreferences(prefs)
	params := EffectiveParams{
		Page:      1,
		Limit:     prefs.Limit,
		Search:    prefs.Search,
		Status:    prefs.Status,
		SortBy:    prefs.SortBy,
		SortOrder: prefs.SortOrder,
	}

	if raw, ok := query.Get(paramPage); ok {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}
	if raw, ok := query.Get(paramLimit); ok {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if raw, ok := query.Get(paramSearch); ok {
		params.Search = raw
	}
	if raw, ok := query.Get(paramStatus); ok {
		if raw == models.StatusAll || models.LeadStatus(raw).IsValid() {
			params.Status = raw
		}
	}
	if raw, ok := query.Get(paramSortBy); ok {
		if field := models.SortField(raw); field.IsValid() {
			params.SortBy = field
		}
	}
	if raw, ok := query.Get(paramSortOrder); ok {
		if order := models.SortOrder(raw); order.IsValid() {
			params.SortOrder = order
		}
	}

	return params
}

// ParamResolver derives the effective list parameters from the address bar
// and the preference store, and writes mutations back to both. Every mutator
// except SetPage resets the page to 1, because the result set changes shape.
type ParamResolver struct {
	query QueryState
	prefs PreferenceServiceInterface
}

// NewParamResolver creates a new ParamResolver over the given address-bar
// state and preference store
func NewParamResolver(query QueryState, prefs PreferenceServiceInterface) *ParamResolver {
	return &ParamResolver{query: query, prefs: prefs}
}

// Params returns the current effective parameter set
func (r *ParamResolver) Params() EffectiveParams {
	return ResolveParams(r.query, r.prefs.Load())
}

// SetPage changes only the transient page; nothing is persisted
func (r *ParamResolver) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	r.query.Set(paramPage, strconv.Itoa(page))
}

// SetSearch writes the search term to the URL (removing the key when empty),
// resets the page, and persists the term
func (r *ParamResolver) SetSearch(search string) {
	if search != "" {
		r.query.Set(paramSearch, search)
	} else {
		r.query.Del(paramSearch)
	}
	r.query.Set(paramPage, "1")
	r.savePreference(func(p *Preferences) { p.Search = search })
}

// SetStatusFilter writes the status filter to the URL ("All" clears the key),
// resets the page, and persists the filter
func (r *ParamResolver) SetStatusFilter(status string) {
	if status == models.StatusAll {
		r.query.Del(paramStatus)
	} else {
		r.query.Set(paramStatus, status)
	}
	r.query.Set(paramPage, "1")
	r.savePreference(func(p *Preferences) { p.Status = status })
}

// SetSortBy writes the sort column, resets the page, and persists the column
func (r *ParamResolver) SetSortBy(field models.SortField) {
	r.query.Set(paramSortBy, string(field))
	r.query.Set(paramPage, "1")
	r.savePreference(func(p *Preferences) { p.SortBy = field })
}

// SetSortOrder writes the sort direction, resets the page, and persists it
func (r *ParamResolver) SetSortOrder(order models.SortOrder) {
	r.query.Set(paramSortOrder, string(order))
	r.query.Set(paramPage, "1")
	r.savePreference(func(p *Preferences) { p.SortOrder = order })
}

// Reset clears the filter keys from the URL, sets the page back to 1, and
// rewrites hard defaults into the preference store. The stored record is
// replaced with defaults, not merely removed.
func (r *ParamResolver) Reset() {
	r.query.Del(paramSearch)
	r.query.Del(paramStatus)
	r.query.Del(paramSortBy)
	r.query.Del(paramSortOrder)
	r.query.Set(paramPage, "1")
	r.prefs.Save(DefaultPreferences())
}

func (r *ParamResolver) savePreference(mutate func(*Preferences)) {
	prefs := r.prefs.Load()
	mutate(&prefs)
	r.prefs.Save(prefs)
}
