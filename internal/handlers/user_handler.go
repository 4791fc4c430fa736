package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/pagination"
	"rolecrm/internal/services"
)

// UserHandler manages the user directory
type UserHandler struct {
	users    services.UserServicer
	activity services.ActivityServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users services.UserServicer, activity services.ActivityServicer) *UserHandler {
	return &UserHandler{users: users, activity: activity}
}

// CreateUserRequest represents the user creation payload
type CreateUserRequest struct {
	Username          string   `json:"username" binding:"required,min=3,max=100"`
	Password          string   `json:"password" binding:"required,min=6,max=128"`
	Name              string   `json:"name" binding:"max=200"`
	Email             string   `json:"email" binding:"omitempty,email,max=255"`
	Role              string   `json:"role" binding:"required,role"`
	AllowedCategories []string `json:"allowed_categories" binding:"omitempty,dive,oneof=Client Partner Vendor Lead Internal"`
}

// ListUsers returns a page of the directory
// @Summary     List users
// @Description List directory users ordered by username
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[models.User] "Paginated users"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.users.ListUsers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateUser adds a directory entry
// @Summary     Create user
// @Description Add a user with a role and category set
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateUserRequest true "User data"
// @Success     201 {object} models.User "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Failure     409 {object} ErrorResponse "Duplicate username"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.CreateUser(services.CreateUserInput{
		Username:          req.Username,
		Password:          req.Password,
		Name:              req.Name,
		Email:             req.Email,
		Role:              access.Role(req.Role),
		AllowedCategories: req.AllowedCategories,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Append(identity.ID, access.LogUserCreate, map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	})

	c.JSON(http.StatusCreated, user)
}

// DeleteUser removes a directory entry
// @Summary     Delete user
// @Description Soft-delete a user. Users cannot delete themselves.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} MessageResponse "User deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.users.DeleteUser(identity.ID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Append(identity.ID, access.LogUserDelete, map[string]any{"user_id": id})

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
