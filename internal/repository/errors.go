// Package repository provides persistence implementations for the
// authentication service: a process-local in-memory store and a
// PostgreSQL-backed store behind the same operations.
package repository

import "errors"

var (
	// ErrUserExists is returned by CreateUser when the username is
	// already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned by FindUser when no user with the
	// given username is stored.
	ErrUserNotFound = errors.New("user not found")
)
