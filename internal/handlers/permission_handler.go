package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/services"
)

// PermissionHandler handles the role permission table
type PermissionHandler struct {
	perms    services.PermissionServicer
	activity services.ActivityServicer
}

// NewPermissionHandler creates a new PermissionHandler
func NewPermissionHandler(perms services.PermissionServicer, activity services.ActivityServicer) *PermissionHandler {
	return &PermissionHandler{perms: perms, activity: activity}
}

// UpdatePermissionRequest sets one flag of a role
type UpdatePermissionRequest struct {
	Kind  string `json:"kind" binding:"required,permission_kind"`
	Key   string `json:"key" binding:"required,max=64"`
	Value *bool  `json:"value" binding:"required"`
}

// GetPermissions returns the whole table
// @Summary     Get permission table
// @Description Get the action, field and category permissions of every role
// @Tags        permissions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} access.Table "Permission table"
// @Failure     401 {object} DeniedResponse "Unauthorized"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Router      /permissions [get]
func (h *PermissionHandler) GetPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, h.perms.Table())
}

// GetRolePermissions returns one role's record
// @Summary     Get role permissions
// @Description Get the permission record of one role
// @Tags        permissions
// @Produce     json
// @Security    BearerAuth
// @Param       role path string true "Role (Admin, HR, User)"
// @Success     200 {object} access.Record "Role permissions"
// @Failure     400 {object} ErrorResponse "Unknown role"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Router      /permissions/{role} [get]
func (h *PermissionHandler) GetRolePermissions(c *gin.Context) {
	rec, err := h.perms.Get(access.Role(c.Param("role")))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateRolePermission sets one flag of a role
// @Summary     Update role permission
// @Description Set one action or field flag of a role. Unrecognized keys are rejected and nothing is stored.
// @Tags        permissions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       role    path string                  true "Role (Admin, HR, User)"
// @Param       request body UpdatePermissionRequest true "Flag to set"
// @Success     200 {object} access.Record "Updated role permissions"
// @Failure     400 {object} ErrorResponse "Invalid input, unknown role or unknown permission"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Router      /permissions/{role} [put]
func (h *PermissionHandler) UpdateRolePermission(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	role := access.Role(c.Param("role"))
	kind := access.Kind(req.Kind)
	if err := h.perms.Update(identity.ID, role, kind, req.Key, *req.Value); err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Append(identity.ID, access.LogPermissionChange, map[string]any{
		"role":  role,
		"kind":  kind,
		"key":   req.Key,
		"value": *req.Value,
	})

	rec, err := h.perms.Get(role)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ResetPermissions restores the shipped defaults
// @Summary     Reset permissions
// @Description Replace the permission table with the shipped defaults
// @Tags        permissions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} access.Table "Default permission table"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /permissions/reset [post]
func (h *PermissionHandler) ResetPermissions(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.perms.Reset(identity.ID); err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Append(identity.ID, access.LogPermissionReset, nil)

	c.JSON(http.StatusOK, h.perms.Table())
}
