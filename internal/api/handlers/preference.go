package handlers

import (
	"net/http"

	"sales-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler exposes the stored list-view preferences
type PreferenceHandler struct {
	prefs service.PreferenceServiceInterface
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(prefs service.PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{
		prefs: prefs,
	}
}

// GetPreferences returns the stored preferences merged over defaults
// @Summary Get preferences
// @Description Get the stored list-view preferences. Missing or unparseable stored values fall back to defaults.
// @Tags preferences
// @Accept json
// @Produce json
// @Success 200 {object} service.Preferences "Effective preferences"
// @Router /api/v1/preferences [get]
// @Security BearerAuth
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.prefs.Load())
}

// PutPreferences replaces the stored preferences
// @Summary Replace preferences
// @Description Persist the given list-view preferences. Out-of-range fields are normalized to defaults on the next load.
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body service.Preferences true "Preferences to store"
// @Success 200 {object} service.Preferences "Stored preferences"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /api/v1/preferences [put]
// @Security BearerAuth
func (h *PreferenceHandler) PutPreferences(c *gin.Context) {
	var prefs service.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	h.prefs.Save(prefs)
	c.JSON(http.StatusOK, h.prefs.Load())
}

// DeletePreferences clears the stored preferences
// @Summary Clear preferences
// @Description Remove the stored list-view preferences; subsequent loads return defaults
// @Tags preferences
// @Accept json
// @Produce json
// @Success 204 "Preferences cleared"
// @Router /api/v1/preferences [delete]
// @Security BearerAuth
func (h *PreferenceHandler) DeletePreferences(c *gin.Context) {
	h.prefs.Clear()
	c.Status(http.StatusNoContent)
}
