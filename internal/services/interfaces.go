package services

import (
	"context"

	"rolecrm/internal/access"
	"rolecrm/internal/models"
	"rolecrm/internal/pagination"
)

// Session is the active sign-in: the identity and the id binding issued
// tokens to it.
type Session struct {
	ID       string          `json:"session_id"`
	Identity access.Identity `json:"user"`
}

// SessionServicer defines the contract for the single-session store.
type SessionServicer interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context) error
	Current() (*Session, bool)
}

// Authenticator is the login backend the session store delegates to.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*access.Identity, error)
}

// PermissionServicer defines the contract for the persisted permission table.
type PermissionServicer interface {
	Table() access.Table
	Get(role access.Role) (access.Record, error)
	Update(actorID string, role access.Role, kind access.Kind, key string, value bool) error
	Reset(actorID string) error
}

// ActivityServicer defines the contract for the activity log store.
type ActivityServicer interface {
	Append(actorID, action string, meta map[string]any) access.LogEntry
	Clear() error
	Entries() []access.LogEntry
	ForViewer(viewer *access.Identity, page pagination.PageRequest) (*pagination.PageResponse[access.LogEntry], error)
}

// UserServicer defines the contract for the user directory.
type UserServicer interface {
	CreateUser(input CreateUserInput) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	DeleteUser(actorID, id string) error
	VerifyPassword(user *models.User, password string) bool
	Directory() ([]access.Identity, error)
}

// CreateUserInput holds the fields of a new directory entry.
type CreateUserInput struct {
	Username          string
	Password          string
	Name              string
	Email             string
	Role              access.Role
	AllowedCategories []string
}

// ContactInput holds contact attributes. Nil pointers are left unchanged
// on update and empty on create.
type ContactInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Company  *string
	Category *string
	Notes    *string
	Tags     []string
	SetTags  bool
}

// ContactServicer defines the contract for permission-gated contact management.
type ContactServicer interface {
	CreateContact(ctx context.Context, ev access.Evaluator, input ContactInput) (*models.Contact, error)
	ListContacts(ev access.Evaluator, page pagination.PageRequest) (*pagination.PageResponse[models.Contact], error)
	GetContact(ev access.Evaluator, id string) (*models.Contact, error)
	UpdateContact(ev access.Evaluator, id string, input ContactInput) (*models.Contact, error)
	DeleteContact(ev access.Evaluator, id string) error
	ExportContacts(ev access.Evaluator) ([]models.Contact, error)
	CategorySummary(ev access.Evaluator) ([]CategoryCount, error)
}

// CategoryCount is the number of visible contacts in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// Preferences holds the persisted UI preferences.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
	Layout   string `json:"layout"`
}

// PreferenceServicer defines the contract for preferences and profile images.
type PreferenceServicer interface {
	Get() Preferences
	Update(actorID string, prefs Preferences) (Preferences, error)
	SetProfileImage(userID, image string) error
	ProfileImage(userID string) (string, error)
}
