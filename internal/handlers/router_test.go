package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/middleware"
	"rolecrm/internal/services"
)

type routerFixture struct {
	engine      *gin.Engine
	sessions    *mockSessionService
	permissions *mockPermissionService
	activity    *mockActivityService
}

func setupRouter(t *testing.T) *routerFixture {
	t.Helper()

	identities := map[string]access.Identity{
		"admin": *testIdentity(access.RoleAdmin, access.Categories...),
		"hr":    *testIdentity(access.RoleHR, "Client", "Partner", "Vendor"),
		"user":  *testIdentity(access.RoleUser, "Client", "Lead"),
	}
	n := 0
	sessions := &mockSessionService{
		loginFn: func(_ context.Context, username, _ string) (*services.Session, error) {
			id, ok := identities[username]
			if !ok {
				return nil, apperrors.ErrInvalidCredentials
			}
			n++
			return &services.Session{ID: "session-" + strings.Repeat("x", n), Identity: id}, nil
		},
	}

	f := &routerFixture{
		engine:      gin.New(),
		sessions:    sessions,
		permissions: newMockPermissions(),
		activity:    &mockActivityService{},
	}
	RegisterRoutes(f.engine, Dependencies{
		Sessions:    sessions,
		Permissions: f.permissions,
		Activity:    f.activity,
		Users:       &mockUserService{},
		Contacts:    &mockContactService{},
		Preferences: newMockPreferences(),
		Tokens:      middleware.NewTokenManager("router-test-secret", time.Hour),
	})
	return f
}

func (f *routerFixture) login(t *testing.T, username string) string {
	t.Helper()
	rec := doRequest(f.engine, http.MethodPost, "/api/v1/auth/login", `{"username":"`+username+`","password":"pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

func (f *routerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, status int, redirect string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	if got := parseJSON(t, rec)["redirect"]; got != redirect {
		t.Errorf("expected redirect %q, got %v", redirect, got)
	}
}

func TestRouter_Health(t *testing.T) {
	f := setupRouter(t)
	rec := f.do(http.MethodGet, "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_Guards(t *testing.T) {
	tests := []struct {
		name     string
		as       string
		method   string
		path     string
		body     string
		status   int
		redirect string
	}{
		{"no_token_contacts", "", http.MethodGet, "/api/v1/contacts", "", http.StatusUnauthorized, "/login"},
		{"no_token_session", "", http.MethodGet, "/api/v1/session", "", http.StatusUnauthorized, "/login"},
		{"user_on_users", "user", http.MethodGet, "/api/v1/users", "", http.StatusForbidden, "/unauthorized"},
		{"hr_on_permissions", "hr", http.MethodGet, "/api/v1/permissions", "", http.StatusForbidden, "/unauthorized"},
		{"user_on_reports", "user", http.MethodGet, "/api/v1/reports/summary", "", http.StatusForbidden, "/unauthorized"},
		{"user_export", "user", http.MethodGet, "/api/v1/contacts/export", "", http.StatusForbidden, "/unauthorized"},
		{"user_delete_contact", "user", http.MethodDelete, "/api/v1/contacts/c1", "", http.StatusForbidden, "/unauthorized"},
		{"hr_clear_activity", "hr", http.MethodDelete, "/api/v1/activity", "", http.StatusForbidden, "/unauthorized"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := setupRouter(t)
			token := ""
			if tc.as != "" {
				token = f.login(t, tc.as)
			}
			assertRedirect(t, f.do(tc.method, tc.path, token, tc.body), tc.status, tc.redirect)
		})
	}
}

func TestRouter_AllowedRoutes(t *testing.T) {
	tests := []struct {
		name   string
		as     string
		method string
		path   string
	}{
		{"admin_users", "admin", http.MethodGet, "/api/v1/users"},
		{"admin_permissions", "admin", http.MethodGet, "/api/v1/permissions"},
		{"hr_reports", "hr", http.MethodGet, "/api/v1/reports/summary"},
		{"hr_export", "hr", http.MethodGet, "/api/v1/contacts/export"},
		{"user_contacts", "user", http.MethodGet, "/api/v1/contacts"},
		{"user_activity", "user", http.MethodGet, "/api/v1/activity"},
		{"user_preferences", "user", http.MethodGet, "/api/v1/preferences"},
		{"user_profile_image", "user", http.MethodGet, "/api/v1/profile/image"},
		{"user_session", "user", http.MethodGet, "/api/v1/session"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := setupRouter(t)
			rec := f.do(tc.method, tc.path, f.login(t, tc.as), "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_ReloginInvalidatesOldToken(t *testing.T) {
	f := setupRouter(t)

	userToken := f.login(t, "user")
	if rec := f.do(http.MethodGet, "/api/v1/session", userToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	adminToken := f.login(t, "admin")
	assertRedirect(t, f.do(http.MethodGet, "/api/v1/session", userToken, ""), http.StatusUnauthorized, "/login")

	rec := f.do(http.MethodGet, "/api/v1/session", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if role := parseJSON(t, rec)["user"].(map[string]interface{})["role"]; role != "Admin" {
		t.Errorf("expected Admin session, got %v", role)
	}
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	f := setupRouter(t)
	token := f.login(t, "hr")

	if rec := f.do(http.MethodPost, "/api/v1/auth/logout", token, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	assertRedirect(t, f.do(http.MethodGet, "/api/v1/contacts", token, ""), http.StatusUnauthorized, "/login")

	got := f.activity.actions()
	if len(got) != 2 || got[0] != access.LogLogout || got[1] != access.LogLogin {
		t.Errorf("expected [logout login], got %v", got)
	}
}

func TestRouter_PermissionChangeAppliesImmediately(t *testing.T) {
	f := setupRouter(t)
	adminToken := f.login(t, "admin")

	rec := f.do(http.MethodPut, "/api/v1/permissions/User", adminToken, `{"kind":"actions","key":"view_reports","value":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	userToken := f.login(t, "user")
	if rec := f.do(http.MethodGet, "/api/v1/reports/summary", userToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected granted report access, got %d", rec.Code)
	}

	f.permissions.table[access.RoleUser].Actions[access.ActionViewReports] = false
	assertRedirect(t, f.do(http.MethodGet, "/api/v1/reports/summary", userToken, ""), http.StatusForbidden, "/unauthorized")
}
