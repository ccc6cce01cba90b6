// Package models defines the core data structures for user identities.
package models

// User represents a registered identity.
type User struct {
	// ID is the unique identifier assigned at registration.
	ID string
	// Username is the normalized login name and the canonical store key.
	Username string
	// PasswordHash is the salted one-way hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string
}
