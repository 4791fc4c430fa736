package services

import (
	"errors"
	"testing"

	"rolecrm/internal/storage"
	"rolecrm/internal/testutil"
)

func TestPreferenceService_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPreferenceService(storage.NewStore(db))

	got := svc.Get()
	want := Preferences{Theme: DefaultTheme, Language: DefaultLanguage, Layout: DefaultLayout}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPreferenceService_Update(t *testing.T) {
	tests := []struct {
		name     string
		input    Preferences
		want     Preferences
		wantCode string
	}{
		{name: "theme_only", input: Preferences{Theme: "dark"}, want: Preferences{Theme: "dark", Language: "en", Layout: "sidebar"}},
		{name: "all", input: Preferences{Theme: "system", Language: "lt", Layout: "topbar"}, want: Preferences{Theme: "system", Language: "lt", Layout: "topbar"}},
		{name: "bad_theme", input: Preferences{Theme: "neon"}, wantCode: "INVALID_INPUT"},
		{name: "bad_layout", input: Preferences{Layout: "grid"}, wantCode: "INVALID_INPUT"},
		{name: "bad_language", input: Preferences{Language: "???"}, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			store := storage.NewStore(db)
			svc := NewPreferenceService(store)

			got, err := svc.Update("u1", tt.input)
			if tt.wantCode != "" {
				testutil.AssertAppError(t, err, tt.wantCode)
				return
			}
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if reloaded := NewPreferenceService(store).Get(); reloaded != tt.want {
				t.Errorf("expected persisted %+v, got %+v", tt.want, reloaded)
			}
		})
	}
}

// failingStore rejects writes to failKey and records the order of writes.
type failingStore struct {
	storage.Store
	failKey string
	writes  []string
}

func (f *failingStore) Set(key, value string) error {
	f.writes = append(f.writes, key)
	if key == f.failKey {
		return errors.New("disk full")
	}
	return f.Store.Set(key, value)
}

func TestPreferenceService_UpdateWritesKeysInOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := &failingStore{Store: storage.NewStore(db), failKey: storage.KeyLanguage}
	svc := NewPreferenceService(store)

	_, err := svc.Update("u1", Preferences{Theme: "dark", Language: "de", Layout: "topbar"})
	testutil.AssertAppError(t, err, "INTERNAL_ERROR")

	wantWrites := []string{storage.KeyTheme, storage.KeyLanguage}
	if len(store.writes) != len(wantWrites) || store.writes[0] != wantWrites[0] || store.writes[1] != wantWrites[1] {
		t.Fatalf("expected writes %v, got %v", wantWrites, store.writes)
	}

	want := Preferences{Theme: "dark", Language: DefaultLanguage, Layout: DefaultLayout}
	if got := NewPreferenceService(store.Store).Get(); got != want {
		t.Errorf("expected only the theme to be stored, got %+v", got)
	}
}

func TestPreferenceService_CorruptValueFallsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(db)
	testutil.AssertNoError(t, store.Set(storage.KeyTheme, "dark"))

	if got := NewPreferenceService(store).Get().Theme; got != DefaultTheme {
		t.Errorf("expected default theme for an unreadable value, got %s", got)
	}
}

func TestPreferenceService_ProfileImage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPreferenceService(storage.NewStore(db))

	img, err := svc.ProfileImage("u1")
	testutil.AssertNoError(t, err)
	if img != "" {
		t.Errorf("expected no image, got %q", img)
	}

	testutil.AssertNoError(t, svc.SetProfileImage("u1", "data:image/png;base64,AAAA"))
	img, _ = svc.ProfileImage("u1")
	if img != "data:image/png;base64,AAAA" {
		t.Errorf("unexpected image %q", img)
	}
	if other, _ := svc.ProfileImage("u2"); other != "" {
		t.Error("images must be stored per user")
	}

	testutil.AssertNoError(t, svc.SetProfileImage("u1", ""))
	if img, _ = svc.ProfileImage("u1"); img != "" {
		t.Error("expected image to be removed")
	}
}
