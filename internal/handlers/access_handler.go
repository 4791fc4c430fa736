package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	"rolecrm/internal/middleware"
	"rolecrm/internal/services"
)

// AccessHandler answers capability and navigation questions for clients.
type AccessHandler struct {
	perms services.PermissionServicer
}

// NewAccessHandler creates a new AccessHandler
func NewAccessHandler(perms services.PermissionServicer) *AccessHandler {
	return &AccessHandler{perms: perms}
}

// RouteDecision is the guard outcome for one page.
type RouteDecision struct {
	Page string `json:"page"`
	access.Decision
}

// GetCapabilities returns every action and field flag for the caller
// @Summary     Get capabilities
// @Description Evaluate every recognized action and field permission for the signed-in identity
// @Tags        access
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} access.Capabilities "Capabilities"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /access [get]
func (h *AccessHandler) GetCapabilities(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev.Capabilities())
}

// ListRoutes returns the pages the caller may navigate to
// @Summary     List visible routes
// @Description List the pages the caller may open, in menu order. Signed-out callers get an empty list.
// @Tags        access
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} access.Route "Visible routes"
// @Router      /routes [get]
func (h *AccessHandler) ListRoutes(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	c.JSON(http.StatusOK, access.VisibleRoutes(identity, h.perms.Table()))
}

// CheckRoute runs the guard for one page
// @Summary     Check route
// @Description Evaluate the guard for a named page. The decision is returned in the body, never as an error status.
// @Tags        access
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Page name"
// @Success     200 {object} RouteDecision "Guard decision"
// @Router      /routes/{name} [get]
func (h *AccessHandler) CheckRoute(c *gin.Context) {
	name := c.Param("name")
	identity, authenticated := middleware.CurrentIdentity(c)
	decision := access.Navigate(name, authenticated, identity, h.perms.Table())
	c.JSON(http.StatusOK, RouteDecision{Page: name, Decision: decision})
}
