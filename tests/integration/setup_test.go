package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rolecrm/internal/handlers"
	"rolecrm/internal/logger"
	"rolecrm/internal/middleware"
	"rolecrm/internal/seed"
	"rolecrm/internal/services"
	"rolecrm/internal/storage"
	"rolecrm/internal/testutil"
	"rolecrm/internal/validator"
)

// Seeded demo credentials.
const (
	adminPassword = "Admin@123"
	hrPassword    = "Hr@123"
	userPassword  = "User@123"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Store  storage.Store
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database holding the demo accounts.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	if err := seed.EnsureUsers(db); err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	return newApp(t, db, storage.NewStore(db))
}

// newApp wires services over db and store. Calling it twice over the same
// store simulates a process restart.
func newApp(t *testing.T, db *gorm.DB, store storage.Store) *testApp {
	t.Helper()

	userService := services.NewUserService(db)
	authenticator := services.NewMockAuthenticator(userService, 0)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	handlers.RegisterRoutes(router, handlers.Dependencies{
		Sessions:    services.NewSessionService(store, authenticator),
		Permissions: services.NewPermissionService(store),
		Activity:    services.NewActivityService(store, userService),
		Users:       userService,
		Contacts:    services.NewContactService(db, 0),
		Preferences: services.NewPreferenceService(store),
		Tokens:      middleware.NewTokenManager("integration-secret", time.Hour),
	})

	return &testApp{DB: db, Router: router, Store: store}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// login signs in and returns the session token and user ID.
func (app *testApp) login(t *testing.T, username, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request(http.MethodPost, "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s failed: %d %s", username, rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// expectStatus fails the test when rec does not carry status.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
}

// activityActors lists the actor of every entry in an activity page.
func activityActors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	data := parseJSON(t, rec)["data"].([]interface{})
	actors := make([]string, len(data))
	for i, e := range data {
		actors[i] = e.(map[string]interface{})["actor"].(string)
	}
	return actors
}
