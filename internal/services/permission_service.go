package services

import (
	"sync"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/logger"
	"rolecrm/internal/storage"
)

// permissionService keeps the permission table in memory and rewrites the
// persisted copy on every change. Concurrent writers elsewhere are not
// detected; the last write wins.
type permissionService struct {
	mu    sync.RWMutex
	store storage.Store
	table access.Table
}

// NewPermissionService creates a PermissionServicer. An absent persisted
// table means the shipped defaults; an unreadable or incomplete one is
// logged and replaced by the defaults.
func NewPermissionService(store storage.Store) PermissionServicer {
	return &permissionService{store: store, table: loadTable(store)}
}

func loadTable(store storage.Store) access.Table {
	var table access.Table
	ok, err := storage.LoadJSON(store, storage.KeyPermissions, &table)
	if err != nil {
		logger.Get().Warnw("permission table unreadable, using defaults", "error", err)
		return access.DefaultTable()
	}
	if !ok {
		return access.DefaultTable()
	}
	if err := table.Validate(); err != nil {
		logger.Get().Warnw("persisted permission table invalid, using defaults", "error", err)
		return access.DefaultTable()
	}
	return table
}

// Table returns a snapshot of the current table.
func (s *permissionService) Table() access.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone()
}

// Get returns the record for role.
func (s *permissionService) Get(role access.Role) (access.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Get(role)
}

// Update sets one flag and persists the whole table.
func (s *permissionService) Update(actorID string, role access.Role, kind access.Kind, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.table.Clone()
	if err := next.Set(role, kind, key, value); err != nil {
		return err
	}
	if err := storage.SaveJSON(s.store, storage.KeyPermissions, next); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.table = next

	logger.Get().Infow("permission updated",
		"actor", actorID,
		"role", role,
		"kind", kind,
		"key", key,
		"value", value,
	)
	return nil
}

// Reset restores the shipped defaults and drops the persisted override.
func (s *permissionService) Reset(actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(storage.KeyPermissions); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.table = access.DefaultTable()

	logger.Get().Infow("permission table reset", "actor", actorID)
	return nil
}
