package handlers

import (
	"fmt"
	"net/http"

	"sales-portal-backend/internal/database/models"
	apierrors "sales-portal-backend/internal/errors"
	"sales-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadsViewHandler exposes the leads list view: a stateless query endpoint
// resolving parameters per request, plus the stateful session view whose
// mutators mirror the list-screen controls.
type LeadsViewHandler struct {
	view  service.LeadsViewInterface
	api   service.LeadsAPIInterface
	prefs service.PreferenceServiceInterface
}

// NewLeadsViewHandler creates a new leads view handler
func NewLeadsViewHandler(view service.LeadsViewInterface, api service.LeadsAPIInterface, prefs service.PreferenceServiceInterface) *LeadsViewHandler {
	return &LeadsViewHandler{
		view:  view,
		api:   api,
		prefs: prefs,
	}
}

// LeadsPageResponse is one resolved, fetched page of the leads list
type LeadsPageResponse struct {
	Leads      []models.Lead           `json:"leads"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"totalPages"`
	Params     service.EffectiveParams `json:"params"`
}

// ViewResponse couples the session view state with its effective parameters
type ViewResponse struct {
	State  service.ViewState       `json:"state"`
	Params service.EffectiveParams `json:"params"`
}

// QueryLeads resolves list parameters for this request and fetches the page
// @Summary Query the leads list
// @Description Resolve the effective list parameters (request query over stored preferences over defaults) and fetch the matching page of leads
// @Tags leads-view
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based, not persisted)"
// @Param limit query int false "Page size"
// @Param search query string false "Free-text search over name and company"
// @Param status query string false "Status filter, or All"
// @Param sortBy query string false "Sort field (score, name, company)"
// @Param sortOrder query string false "Sort direction (asc, desc)"
// @Success 200 {object} LeadsPageResponse "Resolved page of leads"
// @Failure 502 {object} ErrorResponse "Upstream leads endpoint failed"
// @Router /api/v1/leads [get]
// @Security BearerAuth
func (h *LeadsViewHandler) QueryLeads(c *gin.Context) {
	resolver := service.NewParamResolver(service.NewValuesQueryState(c.Request.URL.Query()), h.prefs)
	params := resolver.Params()

	page, err := h.api.FetchPage(params)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: fmt.Sprintf("failed to fetch leads: %v", err)})
		return
	}

	c.JSON(http.StatusOK, LeadsPageResponse{
		Leads:      page.Leads,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Params:     params,
	})
}

// UpdateLead applies a partial lead update through the session view
// @Summary Update a lead
// @Description Apply a partial update to a lead and merge the result into the session view
// @Tags leads-view
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body service.LeadPatch true "Fields to update"
// @Success 200 {object} models.Lead "Updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 502 {object} ErrorResponse "Upstream leads endpoint failed"
// @Router /api/v1/leads/{id} [patch]
// @Security BearerAuth
func (h *LeadsViewHandler) UpdateLead(c *gin.Context) {
	var patch service.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown lead status %q", *patch.Status)})
		return
	}

	lead, err := h.view.UpdateLead(c.Param("id"), patch)
	if err != nil {
		if apierrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "lead not found"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: fmt.Sprintf("failed to update lead: %v", err)})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// GetView returns the current session view state
// @Summary Get the session view
// @Description Get the current leads list state and effective parameters of the session view
// @Tags leads-view
// @Accept json
// @Produce json
// @Success 200 {object} ViewResponse "Current view state"
// @Router /api/v1/view [get]
// @Security BearerAuth
func (h *LeadsViewHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, ViewResponse{
		State:  h.view.Snapshot(),
		Params: h.view.Params(),
	})
}

// Refresh re-fetches the session view with its current parameters
// @Summary Refresh the session view
// @Description Start a fetch for the current effective parameters. The fetch completes asynchronously.
// @Tags leads-view
// @Accept json
// @Produce json
// @Success 202 {object} ViewResponse "View state at the time the fetch started"
// @Router /api/v1/view/refresh [post]
// @Security BearerAuth
func (h *LeadsViewHandler) Refresh(c *gin.Context) {
	h.view.Refresh()
	h.respondAccepted(c)
}

// SetPageRequest selects a page of the session view
type SetPageRequest struct {
	Page int `json:"page" binding:"required"`
}

// SetPage navigates the session view to another page
// @Summary Set the view page
// @Description Navigate the session view to the given page and start a fetch
// @Tags leads-view
// @Accept json
// @Produce json
// @Param request body SetPageRequest true "Page to navigate to"
// @Success 202 {object} ViewResponse "View state at the time the fetch started"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /api/v1/view/page [post]
// @Security BearerAuth
func (h *LeadsViewHandler) SetPage(c *gin.Context) {
	var req SetPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	h.view.SetPage(req.Page)
	h.respondAccepted(c)
}

// SetSearchRequest changes the free-text search term
type SetSearchRequest struct {
	Search string `json:"search"`
}

// SetSearch changes the search term of the session view
// @Summary Set the view search term
// @Description Record the search term immediately; the fetch fires after the debounce quiet period
// @Tags leads-view
// @Accept json
// @Produce json
// @Param request body SetSearchRequest true "Search term (empty clears the search)"
// @Success 202 {object} ViewResponse "View state after recording the term"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /api/v1/view/search [post]
// @Security BearerAuth
func (h *LeadsViewHandler) SetSearch(c *gin.Context) {
	var req SetSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	h.view.SetSearch(req.Search)
	h.respondAccepted(c)
}

// SetStatusRequest changes the status filter
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatusFilter changes the status filter of the session view
// @Summary Set the view status filter
// @Description Change the status filter ("All" clears it) and start a fetch
// @Tags leads-view
// @Accept json
// @Produce json
// @Param request body SetStatusRequest true "Status filter"
// @Success 202 {object} ViewResponse "View state at the time the fetch started"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Router /api/v1/view/status [post]
// @Security BearerAuth
func (h *LeadsViewHandler) SetStatusFilter(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Status != models.StatusAll && !models.LeadStatus(req.Status).IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown lead status %q", req.Status)})
		return
	}

	h.view.SetStatusFilter(req.Status)
	h.respondAccepted(c)
}

// SetSortRequest changes the sort column
type SetSortRequest struct {
	SortBy models.SortField `json:"sortBy" binding:"required"`
}

// SetSortBy changes the sort column of the session view
// @Summary Set the view sort column
// @Description Change the sort column and start a fetch
// @Tags leads-view
// @Accept json
// @Produce json
// @Param request body SetSortRequest true "Sort column"
// @Success 202 {object} ViewResponse "View state at the time the fetch started"
// @Failure 400 {object} ErrorResponse "Invalid sort column"
// @Router /api/v1/view/sort [post]
// @Security BearerAuth
func (h *LeadsViewHandler) SetSortBy(c *gin.Context) {
	var req SetSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if !req.SortBy.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown sort field %q", req.SortBy)})
		return
	}

	h.view.SetSortBy(req.SortBy)
	h.respondAccepted(c)
}

// SetOrderRequest changes the sort direction
type SetOrderRequest struct {
	SortOrder models.SortOrder `json:"sortOrder" binding:"required"`
}

// SetSortOrder changes the sort direction of the session view
// @Summary Set the view sort direction
// @Description Change the sort direction and start a fetch
// @Tags leads-view
// @Accept json
// @Produce json
// @Param request body SetOrderRequest true "Sort direction"
// @Success 202 {object} ViewResponse "View state at the time the fetch started"
// @Failure 400 {object} ErrorResponse "Invalid sort direction"
// @Router /api/v1/view/order [post]
// @Security BearerAuth
func (h *LeadsViewHandler) SetSortOrder(c *gin.Context) {
	var req SetOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if !req.SortOrder.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown sort order %q", req.SortOrder)})
		return
	}

	h.view.SetSortOrder(req.SortOrder)
	h.respondAccepted(c)
}

// Reset restores the session view to its defaults
// @Summary Reset the session view
// @Description Clear search, filter and sort back to defaults, rewrite stored preferences, and start a fetch
// @Tags leads-view
// @Accept json
// @Produce json
// @Success 202 {object} ViewResponse "View state at the time the fetch started"
// @Router /api/v1/view/reset [post]
// @Security BearerAuth
func (h *LeadsViewHandler) Reset(c *gin.Context) {
	h.view.Reset()
	h.respondAccepted(c)
}

func (h *LeadsViewHandler) respondAccepted(c *gin.Context) {
	c.JSON(http.StatusAccepted, ViewResponse{
		State:  h.view.Snapshot(),
		Params: h.view.Params(),
	})
}
