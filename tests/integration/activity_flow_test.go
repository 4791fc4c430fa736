package integration

import (
	"net/http"
	"slices"
	"testing"
)

func TestActivityFlow_ViewerFiltering(t *testing.T) {
	app := setupApp(t)

	// Step 1: Admin starts from an empty log
	adminToken, adminID := app.login(t, "admin", adminPassword)
	expectStatus(t, app.request(http.MethodDelete, "/api/v1/activity", "", adminToken), http.StatusOK)

	// Step 2: User signs in and creates a contact
	userToken, userID := app.login(t, "user", userPassword)
	rec := app.request(http.MethodPost, "/api/v1/contacts", `{"name":"Lead One","category":"Lead"}`, userToken)
	expectStatus(t, rec, http.StatusCreated)

	// Step 3: HR signs in and sees HR and User actors only
	hrToken, hrID := app.login(t, "hr", hrPassword)
	rec = app.request(http.MethodGet, "/api/v1/activity", "", hrToken)
	expectStatus(t, rec, http.StatusOK)
	actors := activityActors(t, rec)
	if len(actors) != 3 {
		t.Fatalf("expected 3 visible entries for HR, got %v", actors)
	}
	if slices.Contains(actors, adminID) {
		t.Error("HR should not see admin entries")
	}
	if actors[0] != hrID || actors[1] != userID || actors[2] != userID {
		t.Errorf("expected [hr user user] newest first, got %v", actors)
	}

	// Step 4: User sees only their own entries
	userToken, _ = app.login(t, "user", userPassword)
	rec = app.request(http.MethodGet, "/api/v1/activity", "", userToken)
	for _, a := range activityActors(t, rec) {
		if a != userID {
			t.Errorf("user saw entry of %s", a)
		}
	}

	// Step 5: Admin sees everything, including their own logins
	adminToken, _ = app.login(t, "admin", adminPassword)
	rec = app.request(http.MethodGet, "/api/v1/activity?page_size=100", "", adminToken)
	actors = activityActors(t, rec)
	if !slices.Contains(actors, adminID) || !slices.Contains(actors, hrID) || !slices.Contains(actors, userID) {
		t.Errorf("admin should see every actor, got %v", actors)
	}
}

func TestActivityFlow_SeededLog(t *testing.T) {
	app := setupApp(t)
	adminToken, _ := app.login(t, "admin", adminPassword)

	rec := app.request(http.MethodGet, "/api/v1/activity?page_size=100", "", adminToken)
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"].(float64); total < 2 {
		t.Errorf("expected seeded entries plus the login, got %v", total)
	}
}

func TestActivityFlow_ClearRequiresPermission(t *testing.T) {
	app := setupApp(t)
	hrToken, _ := app.login(t, "hr", hrPassword)

	rec := app.request(http.MethodDelete, "/api/v1/activity", "", hrToken)
	expectStatus(t, rec, http.StatusForbidden)
}

func TestActivityFlow_RestartAfterClearReseeds(t *testing.T) {
	app := setupApp(t)
	adminToken, _ := app.login(t, "admin", adminPassword)
	expectStatus(t, app.request(http.MethodDelete, "/api/v1/activity", "", adminToken), http.StatusOK)

	rec := app.request(http.MethodGet, "/api/v1/activity", "", adminToken)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 0 {
		t.Fatalf("expected empty log after clear, got %v entries", total)
	}

	// No persisted log remains, so a fresh process starts from the seed.
	restarted := newApp(t, app.DB, app.Store)
	rec = restarted.request(http.MethodGet, "/api/v1/activity?page_size=100", "", adminToken)
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"].(float64); total == 0 {
		t.Error("expected seed entries after restart with no persisted log")
	}
}
