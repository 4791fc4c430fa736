package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/services"
)

// PreferenceHandler handles UI preferences and profile images
type PreferenceHandler struct {
	prefs    services.PreferenceServicer
	activity services.ActivityServicer
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(prefs services.PreferenceServicer, activity services.ActivityServicer) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs, activity: activity}
}

// UpdatePreferencesRequest changes the supplied preferences
type UpdatePreferencesRequest struct {
	Theme    string `json:"theme" binding:"omitempty,theme_mode"`
	Language string `json:"language" binding:"omitempty,language_tag"`
	Layout   string `json:"layout" binding:"omitempty,layout_mode"`
}

// ProfileImageRequest sets the caller's profile image; an empty image
// removes it.
type ProfileImageRequest struct {
	Image string `json:"image" binding:"omitempty,datauri"`
}

// ProfileImageResponse carries a profile image data URL
type ProfileImageResponse struct {
	Image string `json:"image"`
}

// GetPreferences returns the current preferences
// @Summary     Get preferences
// @Description Get theme, language and layout
// @Tags        preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Preferences "Preferences"
// @Failure     401 {object} DeniedResponse "Unauthorized"
// @Router      /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.prefs.Get())
}

// UpdatePreferences stores the supplied preferences
// @Summary     Update preferences
// @Description Change any of theme, language and layout
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdatePreferencesRequest true "Preferences to change"
// @Success     200 {object} services.Preferences "Updated preferences"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /preferences [put]
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	before := h.prefs.Get()
	after, err := h.prefs.Update(identity.ID, services.Preferences{
		Theme:    req.Theme,
		Language: req.Language,
		Layout:   req.Layout,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	if after.Theme != before.Theme {
		h.activity.Append(identity.ID, access.LogThemeChange, map[string]any{
			"from": before.Theme,
			"to":   after.Theme,
		})
	}

	c.JSON(http.StatusOK, after)
}

// GetProfileImage returns the caller's profile image
// @Summary     Get profile image
// @Description Get the caller's profile image as a data URL, empty when none is set
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfileImageResponse "Profile image"
// @Failure     401 {object} DeniedResponse "Unauthorized"
// @Router      /profile/image [get]
func (h *PreferenceHandler) GetProfileImage(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	image, err := h.prefs.ProfileImage(identity.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfileImageResponse{Image: image})
}

// UpdateProfileImage stores the caller's profile image
// @Summary     Update profile image
// @Description Set or remove the caller's profile image
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProfileImageRequest true "Image data URL"
// @Success     200 {object} ProfileImageResponse "Stored image"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /profile/image [put]
func (h *PreferenceHandler) UpdateProfileImage(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ProfileImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.prefs.SetProfileImage(identity.ID, req.Image); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfileImageResponse{Image: req.Image})
}
