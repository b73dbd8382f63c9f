package handlers

import (
	"fmt"
	"net/http"

	"sales-portal-backend/internal/database/models"
	"sales-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OpportunityHandler exposes lead conversion and the opportunity ledger
type OpportunityHandler struct {
	conversion service.ConversionServiceInterface
	ledger     service.OpportunityLedgerInterface
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(conversion service.ConversionServiceInterface, ledger service.OpportunityLedgerInterface) *OpportunityHandler {
	return &OpportunityHandler{
		conversion: conversion,
		ledger:     ledger,
	}
}

// ConvertRequest asks for a lead to be converted into an opportunity. Name and
// account name are snapshotted from the lead at conversion time.
type ConvertRequest struct {
	LeadID      string   `json:"leadId" binding:"required"`
	LeadName    string   `json:"leadName" binding:"required"`
	AccountName string   `json:"accountName" binding:"required"`
	Amount      *float64 `json:"amount"`
}

// OpportunityListResponse is the filtered opportunity collection
type OpportunityListResponse struct {
	Opportunities []service.Opportunity `json:"opportunities"`
	Total         int                   `json:"total"`
}

// ConvertLead converts a lead into an opportunity
// @Summary Convert a lead
// @Description Create an opportunity for the lead. At most one opportunity may exist per lead; the attempt is rejected when one already does. The creation is optimistic and may still be rolled back asynchronously.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Lead to convert"
// @Success 201 {object} service.ConvertResult "Conversion succeeded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} service.ConvertResult "An opportunity already exists for this lead"
// @Router /api/v1/opportunities/convert [post]
// @Security BearerAuth
func (h *OpportunityHandler) ConvertLead(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must not be negative"})
		return
	}

	result := h.conversion.Convert(req.LeadID, req.LeadName, req.AccountName, req.Amount)
	if !result.OK {
		c.JSON(http.StatusConflict, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListOpportunities returns opportunities matching the filters
// @Summary List opportunities
// @Description Get opportunities, optionally filtered by stage and by a case-insensitive search over name and account name
// @Tags opportunities
// @Accept json
// @Produce json
// @Param stage query string false "Stage filter, or All"
// @Param search query string false "Search over name and account name"
// @Success 200 {object} OpportunityListResponse "Matching opportunities"
// @Failure 400 {object} ErrorResponse "Invalid stage"
// @Router /api/v1/opportunities [get]
// @Security BearerAuth
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	stage := c.Query("stage")
	if stage != "" && stage != models.StatusAll && !models.OpportunityStage(stage).IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown opportunity stage %q", stage)})
		return
	}

	opportunities := h.ledger.List(stage, c.Query("search"))
	c.JSON(http.StatusOK, OpportunityListResponse{
		Opportunities: opportunities,
		Total:         len(opportunities),
	})
}

// GetOpportunity returns a single opportunity by ID
// @Summary Get opportunity
// @Description Get a single opportunity by its ID
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} service.Opportunity "Opportunity"
// @Failure 404 {object} ErrorResponse "Opportunity not found"
// @Router /api/v1/opportunities/{id} [get]
// @Security BearerAuth
func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	opp, ok := h.ledger.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "opportunity not found"})
		return
	}

	c.JSON(http.StatusOK, opp)
}

// UpdateOpportunityRequest is a partial opportunity update
type UpdateOpportunityRequest struct {
	Stage  *models.OpportunityStage `json:"stage"`
	Amount *float64                 `json:"amount"`
}

// UpdateOpportunity applies a partial update to an opportunity
// @Summary Update opportunity
// @Description Apply a partial update to an opportunity. Only the provided fields are changed; an empty patch is a no-op.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param request body UpdateOpportunityRequest true "Fields to update"
// @Success 200 {object} service.Opportunity "Updated opportunity"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Opportunity not found"
// @Router /api/v1/opportunities/{id} [patch]
// @Security BearerAuth
func (h *OpportunityHandler) UpdateOpportunity(c *gin.Context) {
	var req UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Stage != nil && !req.Stage.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown opportunity stage %q", *req.Stage)})
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must not be negative"})
		return
	}

	id := c.Param("id")
	if !h.ledger.Update(id, service.OpportunityPatch{Stage: req.Stage, Amount: req.Amount}) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "opportunity not found"})
		return
	}

	opp, ok := h.ledger.Get(id)
	if !ok {
		// Rolled back between the update and the read
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "opportunity not found"})
		return
	}

	c.JSON(http.StatusOK, opp)
}

// HasOpportunityForLead reports whether a lead already has an opportunity
// @Summary Check lead conversion state
// @Description Report whether an opportunity already exists for the lead, including optimistic creations awaiting confirmation
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} map[string]bool "Existence flag"
// @Router /api/v1/leads/{id}/opportunity [get]
// @Security BearerAuth
func (h *OpportunityHandler) HasOpportunityForLead(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]bool{
		"exists": h.ledger.HasForLead(c.Param("id")),
	})
}
