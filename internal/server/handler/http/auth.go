// Package http provides HTTP handlers for user registration and login.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/atinyakov/AuthKeeper/internal/service"
	"github.com/atinyakov/AuthKeeper/internal/validation"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user from raw credentials. It returns the
	// operation result and the HTTP status to write.
	Register(ctx context.Context, username, password string) (service.Result, int)
	// Login authenticates raw credentials against the stored record.
	Login(ctx context.Context, username, password string) (service.Result, int)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and
// login. Fields are decoded as any so a non-string value can be
// rejected with a specific message rather than a generic decode error.
type credentialsRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

// extract pulls the username and password strings out of the decoded
// payload. A missing field defaults to the empty string; a field
// present with a non-string value is reported as not ok.
func (req *credentialsRequest) extract() (username, password string, ok bool) {
	username, ok = asString(req.Username)
	if !ok {
		return "", "", false
	}
	password, ok = asString(req.Password)
	if !ok {
		return "", "", false
	}
	return username, password, true
}

func asString(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

// Register handles user registration requests.
// It expects a JSON body with "username" and "password" fields. An
// unparseable body is treated as an empty payload and missing fields
// default to empty strings; the service rejects those as invalid input.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username, password, ok := decodeCredentials(r)
	if !ok {
		writeJSON(w, service.Result{Error: validation.MsgInvalidType}, http.StatusBadRequest)
		return
	}

	result, status := h.AuthService.Register(r.Context(), username, password)
	writeJSON(w, result, status)
}

// Login handles login requests with the same payload shape as Register.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := decodeCredentials(r)
	if !ok {
		writeJSON(w, service.Result{Error: validation.MsgInvalidType}, http.StatusBadRequest)
		return
	}

	result, status := h.AuthService.Login(r.Context(), username, password)
	writeJSON(w, result, status)
}

// Health reports process liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func decodeCredentials(r *http.Request) (username, password string, ok bool) {
	var req credentialsRequest
	// Decode errors are deliberately ignored: a malformed body behaves
	// like an empty payload, which fails validation downstream.
	_ = json.NewDecoder(r.Body).Decode(&req)
	return req.extract()
}

func writeJSON(w http.ResponseWriter, result service.Result, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}
