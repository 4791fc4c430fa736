// Package storage provides the key/value persistence that backs the
// session, permission table, activity log and preferences. Each key holds
// one JSON document that is rewritten whole on every change.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rolecrm/internal/models"
)

// Persisted keys.
const (
	KeyIdentity           = "crm.identity"
	KeyPermissions        = "crm.permissions"
	KeyActivityLogs       = "crm.activity_logs"
	KeyTheme              = "crm.theme"
	KeyLanguage           = "crm.language"
	KeyLayout             = "crm.layout"
	keyProfileImagePrefix = "crm.profile_image."
)

// ProfileImageKey returns the key holding the profile image of userID.
func ProfileImageKey(userID string) string {
	return keyProfileImagePrefix + userID
}

// Store is a string key/value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// gormStore keeps values in the settings table.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by db.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(key string) (string, bool, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return setting.Value, true, nil
}

func (s *gormStore) Set(key, value string) error {
	setting := &models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *gormStore) Delete(key string) error {
	if err := s.db.Where("key = ?", key).Delete(&models.Setting{}).Error; err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// LoadJSON decodes the value at key into v. It reports false when the key
// is absent. A present but undecodable value is returned as an error so
// the caller can fall back to its defaults.
func LoadJSON(s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes v and stores it at key.
func SaveJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Set(key, string(data))
}
