// Package uuid generates the time-ordered identifiers used for users,
// contacts and activity log entries.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a UUIDv7. Version 7 embeds a millisecond timestamp, so
// IDs minted later sort after earlier ones.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock or entropy source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates and normalizes a UUID string.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
