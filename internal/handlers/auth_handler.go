package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/middleware"
	"rolecrm/internal/services"
)

// AuthHandler handles sign-in, sign-out and the current session
type AuthHandler struct {
	sessions services.SessionServicer
	tokens   *middleware.TokenManager
	perms    services.PermissionServicer
	activity services.ActivityServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions services.SessionServicer, tokens *middleware.TokenManager, perms services.PermissionServicer, activity services.ActivityServicer) *AuthHandler {
	return &AuthHandler{sessions: sessions, tokens: tokens, perms: perms, activity: activity}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// SessionResponse describes the active session
type SessionResponse struct {
	User         access.Identity     `json:"user"`
	Capabilities access.Capabilities `json:"capabilities"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string `json:"token"`
	SessionResponse
}

func (h *AuthHandler) sessionResponse(identity access.Identity) SessionResponse {
	ev := access.NewEvaluator(&identity, h.perms.Table())
	return SessionResponse{User: identity, Capabilities: ev.Capabilities()}
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate against the configured backend and start a new session, replacing any previous one
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "Session started"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials or inactive account"
// @Failure     502 {object} ErrorResponse "Authentication backend unavailable"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Issue(session)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.activity.Append(session.Identity.ID, access.LogLogin, nil)

	c.JSON(http.StatusOK, AuthResponse{
		Token:           token,
		SessionResponse: h.sessionResponse(session.Identity),
	})
}

// Logout ends the active session
// @Summary     Logout
// @Description End the active session. Requests without the active session's token are a no-op.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Logged out"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Only the holder of the active session may end it. Missing or stale
	// tokens leave the session untouched.
	identity, authenticated := middleware.CurrentIdentity(c)
	if !authenticated {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
		return
	}

	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}
	h.activity.Append(identity.ID, access.LogLogout, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetSession returns the active session
// @Summary     Get session
// @Description Get the signed-in identity and its capabilities
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SessionResponse "Active session"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessionResponse(*identity))
}
