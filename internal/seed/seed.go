// Package seed holds the mock data the CRM starts with: the demo user
// directory and the initial activity log.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"rolecrm/internal/access"
	"rolecrm/internal/logger"
	"rolecrm/internal/models"
)

//go:embed users.yaml
var usersYAML []byte

//go:embed activity.yaml
var activityYAML []byte

// User is a demo account with its plaintext password.
type User struct {
	ID         string      `yaml:"id"`
	Username   string      `yaml:"username"`
	Password   string      `yaml:"password"`
	Name       string      `yaml:"name"`
	Email      string      `yaml:"email"`
	Role       access.Role `yaml:"role"`
	Categories []string    `yaml:"categories"`
	Active     bool        `yaml:"active"`
}

type logEntry struct {
	ID        string         `yaml:"id"`
	Timestamp time.Time      `yaml:"timestamp"`
	Actor     string         `yaml:"actor"`
	Action    string         `yaml:"action"`
	Meta      map[string]any `yaml:"meta"`
}

// Users returns the demo accounts.
func Users() []User {
	var users []User
	if err := yaml.Unmarshal(usersYAML, &users); err != nil {
		panic(fmt.Sprintf("seed: parsing users: %v", err))
	}
	return users
}

// ActivityLog returns the initial activity log, newest first.
func ActivityLog() []access.LogEntry {
	var raw []logEntry
	if err := yaml.Unmarshal(activityYAML, &raw); err != nil {
		panic(fmt.Sprintf("seed: parsing activity log: %v", err))
	}
	entries := make([]access.LogEntry, len(raw))
	for i, e := range raw {
		entries[i] = access.LogEntry{ID: e.ID, Timestamp: e.Timestamp, Actor: e.Actor, Action: e.Action, Meta: e.Meta}
	}
	return entries
}

// EnsureUsers creates every demo account that does not exist yet.
// Existing accounts, including soft-deleted ones, are left untouched.
func EnsureUsers(db *gorm.DB) error {
	for _, u := range Users() {
		var existing models.User
		err := db.Unscoped().Where("username = ?", u.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("looking up seed user %s: %w", u.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing seed password for %s: %w", u.Username, err)
		}
		user := &models.User{
			Username:          u.Username,
			Password:          string(hash),
			Name:              u.Name,
			Email:             u.Email,
			Role:              u.Role,
			AllowedCategories: u.Categories,
			IsActive:          true,
		}
		user.ID = u.ID
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("creating seed user %s: %w", u.Username, err)
		}
		// The column default applies on insert, so inactive accounts are
		// flipped afterwards.
		if !u.Active {
			if err := db.Model(user).Update("is_active", false).Error; err != nil {
				return fmt.Errorf("deactivating seed user %s: %w", u.Username, err)
			}
		}
		logger.Get().Infow("seeded user", "username", u.Username, "role", u.Role)
	}
	return nil
}
