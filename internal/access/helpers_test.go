package access

import (
	"errors"
	"testing"

	apperrors "rolecrm/internal/errors"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError with code %q, got %T: %v", code, err, err)
	}
	if appErr.Code != code {
		t.Errorf("expected error code %q, got %q", code, appErr.Code)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func identity(id string, role Role, categories ...string) *Identity {
	return &Identity{ID: id, Username: id, Role: role, AllowedCategories: categories}
}
