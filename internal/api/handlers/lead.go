package handlers

import (
	"net/http"
	"strconv"

	"sales-portal-backend/internal/database/models"
	apierrors "sales-portal-backend/internal/errors"
	"sales-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler serves the flat lead collection API. The endpoint shapes
// (_page/_limit/_sort/_order query parameters, bare array bodies, the
// X-Total-Count header) follow the json-server conventions the portal
// client was written against.
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// ListLeads returns leads matching the query parameters
// @Summary List leads
// @Description Get leads with optional pagination, sorting and status filtering. The total row count for the filter is returned in the X-Total-Count header.
// @Tags leads
// @Accept json
// @Produce json
// @Param _page query int false "Page number (1-based)"
// @Param _limit query int false "Page size"
// @Param _sort query string false "Sort field (score, name, company)"
// @Param _order query string false "Sort direction (asc, desc)"
// @Param status query string false "Filter by lead status"
// @Success 200 {array} models.Lead "Leads for the requested page"
// @Header 200 {string} X-Total-Count "Total leads matching the filter"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	query := service.LeadListQuery{
		SortBy:    models.SortField(c.DefaultQuery("_sort", string(models.SortByScore))),
		SortOrder: models.SortOrder(c.DefaultQuery("_order", string(models.SortDesc))),
		Status:    c.Query("status"),
	}

	if raw := c.Query("_page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "_page must be an integer"})
			return
		}
		query.Page = page
		// json-server paginates with a default page size when only _page is given
		query.Limit = service.DefaultPageLimit
	}

	if raw := c.Query("_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "_limit must be an integer"})
			return
		}
		query.Limit = limit
	}

	leads, total, err := h.leadService.List(query)
	if err != nil {
		if apierrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list leads"})
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, leads)
}

// GetLead returns a single lead by ID
// @Summary Get lead
// @Description Get a single lead by its ID
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} models.Lead "Lead"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadService.Get(c.Param("id"))
	if err != nil {
		if apierrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get lead"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// PatchLead applies a partial update to a lead
// @Summary Update lead
// @Description Apply a partial update to a lead. Only the provided fields are changed.
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body service.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} models.Lead "Updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads/{id} [patch]
func (h *LeadHandler) PatchLead(c *gin.Context) {
	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	lead, err := h.leadService.Patch(c.Param("id"), &req)
	if err != nil {
		switch {
		case apierrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case apierrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "lead not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update lead"})
		}
		return
	}

	c.JSON(http.StatusOK, lead)
}
