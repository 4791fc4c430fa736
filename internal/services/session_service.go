package services

import (
	"context"
	"sync"

	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/logger"
	"rolecrm/internal/storage"
	"rolecrm/internal/uuid"
)

// sessionService holds the single active session. Signing in replaces it
// wholesale and signing out destroys it.
type sessionService struct {
	mu      sync.RWMutex
	store   storage.Store
	auth    Authenticator
	current *Session
}

// NewSessionService creates a SessionServicer and restores a persisted
// session if one is present and readable.
func NewSessionService(store storage.Store, auth Authenticator) SessionServicer {
	s := &sessionService{store: store, auth: auth}

	var persisted Session
	ok, err := storage.LoadJSON(store, storage.KeyIdentity, &persisted)
	switch {
	case err != nil:
		logger.Get().Warnw("persisted session unreadable, starting signed out", "error", err)
	case ok && persisted.ID != "" && persisted.Identity.ID != "":
		s.current = &persisted
	}
	return s
}

// Login authenticates and, on success, makes the result the active
// session. A failed attempt leaves the current session untouched.
func (s *sessionService) Login(ctx context.Context, username, password string) (*Session, error) {
	identity, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	session := &Session{ID: uuid.New(), Identity: *identity}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.SaveJSON(s.store, storage.KeyIdentity, session); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.current = session

	copied := *session
	return &copied, nil
}

// Logout clears the active session. Logging out twice is harmless.
func (s *sessionService) Logout(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(storage.KeyIdentity); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.current = nil
	return nil
}

// Current returns a copy of the active session.
func (s *sessionService) Current() (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, false
	}
	copied := *s.current
	copied.Identity.AllowedCategories = append([]string{}, s.current.Identity.AllowedCategories...)
	return &copied, true
}
