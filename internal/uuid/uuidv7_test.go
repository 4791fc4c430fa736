package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNewIsVersion7(t *testing.T) {
	id := New()
	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("New() returned unparsable id %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("0192F6C4-7D3A-7B2E-9C41-5A6B7C8D9E0F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0192f6c4-7d3a-7b2e-9c41-5a6b7c8d9e0f" {
		t.Errorf("expected lowercase form, got %s", got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for invalid input")
	}
	if IsValid("u1") {
		t.Error("expected u1 to be invalid")
	}
}
