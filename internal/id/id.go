// Package id assigns opaque record identifiers.
package id

import "github.com/google/uuid"

// New returns a new unique record ID. IDs are assigned at creation and
// never change.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a well-formed record ID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
