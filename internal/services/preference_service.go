package services

import (
	"sync"

	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/logger"
	"rolecrm/internal/storage"
	"rolecrm/internal/validator"
)

// Default preferences used when nothing is persisted.
const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
	DefaultLayout   = "sidebar"
)

// maxProfileImageSize bounds a stored profile image (a data URL).
const maxProfileImageSize = 512 * 1024

// preferenceService keeps each preference under its own key.
type preferenceService struct {
	mu    sync.Mutex
	store storage.Store
}

// NewPreferenceService creates a new PreferenceServicer.
func NewPreferenceService(store storage.Store) PreferenceServicer {
	return &preferenceService{store: store}
}

func (s *preferenceService) load(key, fallback string, valid func(string) bool) string {
	var v string
	ok, err := storage.LoadJSON(s.store, key, &v)
	if err != nil {
		logger.Get().Warnw("preference unreadable, using default", "key", key, "error", err)
		return fallback
	}
	if !ok || !valid(v) {
		return fallback
	}
	return v
}

// Get returns the current preferences.
func (s *preferenceService) Get() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get()
}

func (s *preferenceService) get() Preferences {
	return Preferences{
		Theme:    s.load(storage.KeyTheme, DefaultTheme, validator.IsThemeMode),
		Language: s.load(storage.KeyLanguage, DefaultLanguage, validator.IsLanguageTag),
		Layout:   s.load(storage.KeyLayout, DefaultLayout, validator.IsLayoutMode),
	}
}

// Update stores the non-empty fields of prefs and returns the result.
func (s *preferenceService) Update(actorID string, prefs Preferences) (Preferences, error) {
	if prefs.Theme != "" && !validator.IsThemeMode(prefs.Theme) {
		return Preferences{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "theme must be light, dark or system")
	}
	if prefs.Layout != "" && !validator.IsLayoutMode(prefs.Layout) {
		return Preferences{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "layout must be sidebar or topbar")
	}
	if prefs.Language != "" && !validator.IsLanguageTag(prefs.Language) {
		return Preferences{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "language must be a BCP 47 tag")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Each key is written on its own, in this order. A failed write keeps
	// the keys stored before it.
	updates := []struct{ key, value string }{
		{storage.KeyTheme, prefs.Theme},
		{storage.KeyLanguage, prefs.Language},
		{storage.KeyLayout, prefs.Layout},
	}
	for _, u := range updates {
		if u.value == "" {
			continue
		}
		if err := storage.SaveJSON(s.store, u.key, u.value); err != nil {
			return Preferences{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	logger.Get().Debugw("preferences updated", "actor", actorID)
	return s.get(), nil
}

// SetProfileImage stores image for userID; an empty image removes it.
func (s *preferenceService) SetProfileImage(userID, image string) error {
	if len(image) > maxProfileImageSize {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "profile image is too large")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := storage.ProfileImageKey(userID)
	if image == "" {
		if err := s.store.Delete(key); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}
	if err := storage.SaveJSON(s.store, key, image); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ProfileImage returns the stored image for userID, or "" when none is set.
func (s *preferenceService) ProfileImage(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var image string
	if _, err := storage.LoadJSON(s.store, storage.ProfileImageKey(userID), &image); err != nil {
		logger.Get().Warnw("profile image unreadable", "user_id", userID, "error", err)
		return "", nil
	}
	return image, nil
}
