// Package service provides authentication business logic: input
// validation, username normalization, password hashing, and the
// register/login state transitions over a user store.
package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/atinyakov/AuthKeeper/internal/hasher"
	"github.com/atinyakov/AuthKeeper/internal/models"
	"github.com/atinyakov/AuthKeeper/internal/repository"
	"github.com/atinyakov/AuthKeeper/internal/validation"
	"github.com/google/uuid"
)

// Messages returned to callers. Unknown-username and wrong-password
// login failures share one message so responses do not reveal which
// field was wrong.
const (
	MsgRegistered      = "Registration successful."
	MsgLoggedIn        = "Login successful."
	MsgUsernameTaken   = "Username already exists."
	MsgInvalidLogin    = "Invalid username or password."
	MsgInternalFailure = "internal error"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// FindUser returns the user with the given normalized username,
	// or repository.ErrUserNotFound if none exists.
	FindUser(ctx context.Context, username string) (*models.User, error)
	// CreateUser inserts a new user record atomically, returning
	// repository.ErrUserExists if the username is already taken.
	CreateUser(ctx context.Context, user *models.User) error
}

// Result is the outcome of an authentication operation. Exactly one of
// Message and Error is set.
type Result struct {
	// Message describes a successful outcome.
	Message string `json:"message,omitempty"`
	// Error describes a failed outcome.
	Error string `json:"error,omitempty"`
}

// Service implements registration and login by delegating persistence
// to a UserRepository and hashing to a PasswordHasher. It is the only
// component that reads or writes the user store.
type Service struct {
	// repo performs the data-layer operations.
	repo UserRepository
	// hasher derives and verifies password hashes.
	hasher hasher.PasswordHasher
}

// NewAuthService constructs a new Service using the provided repository
// and password hasher.
func NewAuthService(repo UserRepository, h hasher.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: h}
}

// Register validates the credentials, normalizes the username, hashes
// the password, and stores a new user record. It returns the operation
// result together with the HTTP status the transport should write:
// 201 on success, 400 on malformed input, 409 when the username is
// taken. No failure path leaves a partial record behind.
func (s *Service) Register(ctx context.Context, username, password string) (Result, int) {
	if ok, msg := validation.Validate(username, password); !ok {
		return Result{Error: msg}, http.StatusBadRequest
	}

	normalized := validation.Normalize(username)

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return Result{Error: MsgInternalFailure}, http.StatusInternalServerError
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     normalized,
		PasswordHash: passwordHash,
	}
	// The repository insert is the duplicate check: it either creates
	// the record or reports the conflict atomically.
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return Result{Error: MsgUsernameTaken}, http.StatusConflict
		}
		return Result{Error: MsgInternalFailure}, http.StatusInternalServerError
	}

	return Result{Message: MsgRegistered}, http.StatusCreated
}

// Login validates the credentials, looks up the normalized username, and
// verifies the password against the stored hash. It returns 200 on
// success, 400 on malformed input, and 401 for both an unknown username
// and a wrong password. Login never mutates the store.
func (s *Service) Login(ctx context.Context, username, password string) (Result, int) {
	if ok, msg := validation.Validate(username, password); !ok {
		return Result{Error: msg}, http.StatusBadRequest
	}

	normalized := validation.Normalize(username)

	user, err := s.repo.FindUser(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Result{Error: MsgInvalidLogin}, http.StatusUnauthorized
		}
		return Result{Error: MsgInternalFailure}, http.StatusInternalServerError
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return Result{Error: MsgInternalFailure}, http.StatusInternalServerError
	}
	if !ok {
		return Result{Error: MsgInvalidLogin}, http.StatusUnauthorized
	}

	return Result{Message: MsgLoggedIn}, http.StatusOK
}
