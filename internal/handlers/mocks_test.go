package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	"rolecrm/internal/logger"
	"rolecrm/internal/middleware"
	"rolecrm/internal/models"
	"rolecrm/internal/pagination"
	"rolecrm/internal/services"
	"rolecrm/internal/validator"
)

// --- mock services ---

type mockSessionService struct {
	loginFn  func(ctx context.Context, username, password string) (*services.Session, error)
	logoutFn func(ctx context.Context) error
	current  *services.Session
}

func (m *mockSessionService) Login(ctx context.Context, username, password string) (*services.Session, error) {
	if m.loginFn != nil {
		s, err := m.loginFn(ctx, username, password)
		if err == nil {
			m.current = s
		}
		return s, err
	}
	return &services.Session{}, nil
}

func (m *mockSessionService) Logout(ctx context.Context) error {
	m.current = nil
	if m.logoutFn != nil {
		return m.logoutFn(ctx)
	}
	return nil
}

func (m *mockSessionService) Current() (*services.Session, bool) {
	if m.current == nil {
		return nil, false
	}
	copied := *m.current
	return &copied, true
}

// mockPermissionService keeps a real table in memory.
type mockPermissionService struct {
	table access.Table
}

func newMockPermissions() *mockPermissionService {
	return &mockPermissionService{table: access.DefaultTable()}
}

func (m *mockPermissionService) Table() access.Table { return m.table.Clone() }

func (m *mockPermissionService) Get(role access.Role) (access.Record, error) {
	return m.table.Get(role)
}

func (m *mockPermissionService) Update(_ string, role access.Role, kind access.Kind, key string, value bool) error {
	next := m.table.Clone()
	if err := next.Set(role, kind, key, value); err != nil {
		return err
	}
	m.table = next
	return nil
}

func (m *mockPermissionService) Reset(string) error {
	m.table = access.DefaultTable()
	return nil
}

// mockActivityService records appended entries.
type mockActivityService struct {
	mu         sync.Mutex
	entries    []access.LogEntry
	clearFn    func() error
	forViewFn  func(viewer *access.Identity, page pagination.PageRequest) (*pagination.PageResponse[access.LogEntry], error)
	lastViewer *access.Identity
}

func (m *mockActivityService) Append(actorID, action string, meta map[string]any) access.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := access.LogEntry{ID: action, Actor: actorID, Action: action, Meta: meta}
	m.entries = append([]access.LogEntry{e}, m.entries...)
	return e
}

func (m *mockActivityService) Clear() error {
	if m.clearFn != nil {
		return m.clearFn()
	}
	m.entries = nil
	return nil
}

func (m *mockActivityService) Entries() []access.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]access.LogEntry(nil), m.entries...)
}

func (m *mockActivityService) ForViewer(viewer *access.Identity, page pagination.PageRequest) (*pagination.PageResponse[access.LogEntry], error) {
	m.lastViewer = viewer
	if m.forViewFn != nil {
		return m.forViewFn(viewer, page)
	}
	page.Defaults()
	resp := pagination.Slice(m.Entries(), page)
	return &resp, nil
}

func (m *mockActivityService) actions() []string {
	var out []string
	for _, e := range m.Entries() {
		out = append(out, e.Action)
	}
	return out
}

type mockUserService struct {
	createUserFn func(input services.CreateUserInput) (*models.User, error)
	listUsersFn  func(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	deleteUserFn func(actorID, id string) error
}

func (m *mockUserService) CreateUser(input services.CreateUserInput) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(input)
	}
	return &models.User{Username: input.Username, Role: input.Role}, nil
}

func (m *mockUserService) GetUserByUsername(string) (*models.User, error) { return &models.User{}, nil }
func (m *mockUserService) GetUserByID(string) (*models.User, error)       { return &models.User{}, nil }

func (m *mockUserService) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(page)
	}
	resp := pagination.NewPageResponse([]models.User{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockUserService) DeleteUser(actorID, id string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(actorID, id)
	}
	return nil
}

func (m *mockUserService) VerifyPassword(*models.User, string) bool { return true }
func (m *mockUserService) Directory() ([]access.Identity, error)   { return nil, nil }

type mockContactService struct {
	createFn  func(ev access.Evaluator, input services.ContactInput) (*models.Contact, error)
	listFn    func(ev access.Evaluator, page pagination.PageRequest) (*pagination.PageResponse[models.Contact], error)
	getFn     func(ev access.Evaluator, id string) (*models.Contact, error)
	updateFn  func(ev access.Evaluator, id string, input services.ContactInput) (*models.Contact, error)
	deleteFn  func(ev access.Evaluator, id string) error
	exportFn  func(ev access.Evaluator) ([]models.Contact, error)
	summaryFn func(ev access.Evaluator) ([]services.CategoryCount, error)
}

func (m *mockContactService) CreateContact(_ context.Context, ev access.Evaluator, input services.ContactInput) (*models.Contact, error) {
	if m.createFn != nil {
		return m.createFn(ev, input)
	}
	return &models.Contact{}, nil
}

func (m *mockContactService) ListContacts(ev access.Evaluator, page pagination.PageRequest) (*pagination.PageResponse[models.Contact], error) {
	if m.listFn != nil {
		return m.listFn(ev, page)
	}
	resp := pagination.NewPageResponse([]models.Contact{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockContactService) GetContact(ev access.Evaluator, id string) (*models.Contact, error) {
	if m.getFn != nil {
		return m.getFn(ev, id)
	}
	return &models.Contact{}, nil
}

func (m *mockContactService) UpdateContact(ev access.Evaluator, id string, input services.ContactInput) (*models.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ev, id, input)
	}
	return &models.Contact{}, nil
}

func (m *mockContactService) DeleteContact(ev access.Evaluator, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ev, id)
	}
	return nil
}

func (m *mockContactService) ExportContacts(ev access.Evaluator) ([]models.Contact, error) {
	if m.exportFn != nil {
		return m.exportFn(ev)
	}
	return []models.Contact{}, nil
}

func (m *mockContactService) CategorySummary(ev access.Evaluator) ([]services.CategoryCount, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ev)
	}
	return []services.CategoryCount{}, nil
}

type mockPreferenceService struct {
	prefs  services.Preferences
	images map[string]string
}

func newMockPreferences() *mockPreferenceService {
	return &mockPreferenceService{
		prefs:  services.Preferences{Theme: "light", Language: "en", Layout: "sidebar"},
		images: map[string]string{},
	}
}

func (m *mockPreferenceService) Get() services.Preferences { return m.prefs }

func (m *mockPreferenceService) Update(_ string, p services.Preferences) (services.Preferences, error) {
	if p.Theme != "" {
		m.prefs.Theme = p.Theme
	}
	if p.Language != "" {
		m.prefs.Language = p.Language
	}
	if p.Layout != "" {
		m.prefs.Layout = p.Layout
	}
	return m.prefs, nil
}

func (m *mockPreferenceService) SetProfileImage(userID, image string) error {
	m.images[userID] = image
	return nil
}

func (m *mockPreferenceService) ProfileImage(userID string) (string, error) {
	return m.images[userID], nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func testIdentity(role access.Role, categories ...string) *access.Identity {
	if categories == nil {
		categories = []string{}
	}
	return &access.Identity{ID: "id-" + string(role), Username: strings.ToLower(string(role)), Role: role, AllowedCategories: categories}
}

// injectIdentity stands in for middleware.Authenticate.
func injectIdentity(identity *access.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity != nil {
			c.Set(middleware.IdentityKey, identity)
		}
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
