// Package uuid generates and validates the string identifiers used as
// primary keys. New identifiers are UUIDv7 so that rows created later sort
// after rows created earlier, which the debt ledger relies on for FIFO order.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new time-ordered UUIDv7 string.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Entropy failure; a random v4 still gives a unique key.
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
