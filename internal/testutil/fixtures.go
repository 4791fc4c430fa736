package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"rolecrm/internal/access"
	"rolecrm/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a unique username.
func CreateTestUser(t *testing.T, db *gorm.DB, role access.Role, categories ...string) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username, role, categories...)
}

// CreateTestUserWithUsername creates an active user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string, role access.Role, categories ...string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if categories == nil {
		categories = []string{}
	}
	user := &models.User{
		Username:          username,
		Password:          string(hash),
		Name:              username,
		Role:              role,
		AllowedCategories: categories,
		IsActive:          true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// TestIdentity returns the identity of user.
func TestIdentity(user *models.User) *access.Identity {
	id := user.Identity()
	return &id
}

// CreateTestContact creates a contact in category owned by ownerID.
func CreateTestContact(t *testing.T, db *gorm.DB, ownerID, category string) *models.Contact {
	t.Helper()

	n := nextID()
	contact := &models.Contact{
		OwnerID:  ownerID,
		Name:     fmt.Sprintf("Contact %d", n),
		Email:    fmt.Sprintf("contact%d@example.com", n),
		Phone:    "+1 555 0100",
		Company:  "Acme",
		Category: category,
		Notes:    "met at expo",
		Tags:     []string{"vip"},
	}
	if err := db.Create(contact).Error; err != nil {
		t.Fatalf("failed to create test contact: %v", err)
	}
	return contact
}
