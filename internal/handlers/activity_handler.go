package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/logger"
	"rolecrm/internal/pagination"
	"rolecrm/internal/services"
)

// ActivityHandler serves the activity log
type ActivityHandler struct {
	activity services.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activity services.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// ListActivity returns the entries the caller may see
// @Summary     List activity
// @Description List activity entries newest first. Admin sees all, HR sees HR and User actors, User sees their own.
// @Tags        activity
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[access.LogEntry] "Paginated entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Router      /activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.activity.ForViewer(identity, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearActivity empties the log
// @Summary     Clear activity
// @Description Remove every activity entry
// @Tags        activity
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Cleared"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activity [delete]
func (h *ActivityHandler) ClearActivity(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.activity.Clear(); err != nil {
		respondWithError(c, err)
		return
	}
	logger.Get().Infow("activity log cleared", "actor", identity.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Activity log cleared"})
}
