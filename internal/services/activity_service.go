package services

import (
	"sync"
	"time"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/logger"
	"rolecrm/internal/pagination"
	"rolecrm/internal/seed"
	"rolecrm/internal/storage"
	"rolecrm/internal/uuid"
)

// activityService holds the activity log, newest entry first.
type activityService struct {
	mu      sync.Mutex
	store   storage.Store
	users   UserServicer
	entries []access.LogEntry
	now     func() time.Time
}

// NewActivityService creates an ActivityServicer. The persisted list is
// read once; when it is absent or unreadable the seed log is used.
func NewActivityService(store storage.Store, users UserServicer) ActivityServicer {
	s := &activityService{store: store, users: users, now: time.Now}

	var entries []access.LogEntry
	ok, err := storage.LoadJSON(store, storage.KeyActivityLogs, &entries)
	switch {
	case err != nil:
		logger.Get().Warnw("activity log unreadable, using seed data", "error", err)
		entries = seed.ActivityLog()
	case !ok:
		entries = seed.ActivityLog()
	}
	s.entries = entries
	return s
}

// Append records an action. Persistence failures are logged and never
// propagate to avoid disrupting the main operation.
func (s *activityService) Append(actorID, action string, meta map[string]any) access.LogEntry {
	entry := access.LogEntry{
		ID:        uuid.New(),
		Timestamp: s.now().UTC(),
		Actor:     actorID,
		Action:    action,
		Meta:      meta,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]access.LogEntry{entry}, s.entries...)
	if err := storage.SaveJSON(s.store, storage.KeyActivityLogs, s.entries); err != nil {
		logger.Get().Errorw("failed to persist activity log",
			"error", err,
			"actor", actorID,
			"action", action,
		)
	}
	return entry
}

// Clear empties the log and removes the persisted record.
func (s *activityService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(storage.KeyActivityLogs); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.entries = nil
	return nil
}

// Entries returns a copy of the whole log.
func (s *activityService) Entries() []access.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]access.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ForViewer returns one page of the entries viewer may see.
func (s *activityService) ForViewer(viewer *access.Identity, page pagination.PageRequest) (*pagination.PageResponse[access.LogEntry], error) {
	page.Defaults()

	directory, err := s.users.Directory()
	if err != nil {
		return nil, err
	}

	visible := access.FilterForViewer(s.Entries(), viewer, directory)
	resp := pagination.Slice(visible, page)
	return &resp, nil
}
