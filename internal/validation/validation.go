// Package validation provides pure functions for normalizing and
// validating raw credential input. It holds no state and performs no I/O.
package validation

import (
	"strings"
	"unicode/utf8"
)

// Validation failure messages returned to callers verbatim.
const (
	// MsgInvalidType is returned when a credential field is not a string.
	// The typed core cannot produce it; the transport layer uses it when
	// a JSON field carries a non-string value.
	MsgInvalidType = "Username and password must be strings."
	// MsgEmptyUsername is returned when the trimmed username is empty.
	MsgEmptyUsername = "Username cannot be empty."
	// MsgUsernameTooShort is returned when the trimmed username has fewer
	// than MinUsernameLen characters.
	MsgUsernameTooShort = "Username must be at least 3 characters."
	// MsgPasswordTooShort is returned when the password has fewer than
	// MinPasswordLen characters.
	MsgPasswordTooShort = "Password must be at least 6 characters."
)

// Length limits, counted in characters (runes), not bytes.
const (
	// MinUsernameLen is the minimum length of a trimmed username.
	MinUsernameLen = 3
	// MinPasswordLen is the minimum length of a password.
	MinPasswordLen = 6
)

// Normalize returns the canonical form of a username: surrounding
// whitespace stripped, then lowercased. It is idempotent, so the same
// function serves both registration and lookup.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Validate reports whether a raw (username, password) pair is well formed.
// Rules are checked in a fixed order and only the first failing rule's
// message is returned; on success the message is empty.
//
// The username is trimmed before length checks; the password is not.
func Validate(username, password string) (bool, string) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return false, MsgEmptyUsername
	}
	if utf8.RuneCountInString(trimmed) < MinUsernameLen {
		return false, MsgUsernameTooShort
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return false, MsgPasswordTooShort
	}
	return true, ""
}
