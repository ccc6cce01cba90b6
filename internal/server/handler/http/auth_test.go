package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atinyakov/AuthKeeper/internal/service"
	"github.com/atinyakov/AuthKeeper/internal/validation"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	registerResult service.Result
	registerStatus int
	loginResult    service.Result
	loginStatus    int

	gotUsername string
	gotPassword string
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (service.Result, int) {
	f.gotUsername, f.gotPassword = username, password
	return f.registerResult, f.registerStatus
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (service.Result, int) {
	f.gotUsername, f.gotPassword = username, password
	return f.loginResult, f.loginStatus
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
		expectedBody map[string]string
		wantUsername string
		wantPassword string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret1"}`,
			service: &fakeAuthService{
				registerResult: service.Result{Message: service.MsgRegistered},
				registerStatus: http.StatusCreated,
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": service.MsgRegistered},
			wantUsername: "alice",
			wantPassword: "secret1",
		},
		{
			name: "service error passed through",
			body: `{"username":"alice","password":"secret1"}`,
			service: &fakeAuthService{
				registerResult: service.Result{Error: service.MsgUsernameTaken},
				registerStatus: http.StatusConflict,
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]string{"error": service.MsgUsernameTaken},
		},
		{
			name: "missing fields default to empty strings",
			body: `{}`,
			service: &fakeAuthService{
				registerResult: service.Result{Error: validation.MsgEmptyUsername},
				registerStatus: http.StatusBadRequest,
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": validation.MsgEmptyUsername},
			wantUsername: "",
			wantPassword: "",
		},
		{
			name: "malformed body treated as empty payload",
			body: `not a json`,
			service: &fakeAuthService{
				registerResult: service.Result{Error: validation.MsgEmptyUsername},
				registerStatus: http.StatusBadRequest,
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": validation.MsgEmptyUsername},
		},
		{
			name:         "non-string username rejected",
			body:         `{"username":42,"password":"secret1"}`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": validation.MsgInvalidType},
		},
		{
			name:         "non-string password rejected",
			body:         `{"username":"alice","password":["secret1"]}`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": validation.MsgInvalidType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/register", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Register(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}
			if ct := res.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q; want application/json", ct)
			}

			var got map[string]string
			if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if len(got) != len(tt.expectedBody) {
				t.Errorf("body = %v; want %v", got, tt.expectedBody)
			}
			for k, v := range tt.expectedBody {
				if got[k] != v {
					t.Errorf("body[%q] = %q; want %q", k, got[k], v)
				}
			}

			if tt.wantUsername != "" && tt.service.gotUsername != tt.wantUsername {
				t.Errorf("service received username %q; want %q", tt.service.gotUsername, tt.wantUsername)
			}
			if tt.wantPassword != "" && tt.service.gotPassword != tt.wantPassword {
				t.Errorf("service received password %q; want %q", tt.service.gotPassword, tt.wantPassword)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret1"}`,
			service: &fakeAuthService{
				loginResult: service.Result{Message: service.MsgLoggedIn},
				loginStatus: http.StatusOK,
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": service.MsgLoggedIn},
		},
		{
			name: "authentication failure passed through",
			body: `{"username":"alice","password":"wrongpass"}`,
			service: &fakeAuthService{
				loginResult: service.Result{Error: service.MsgInvalidLogin},
				loginStatus: http.StatusUnauthorized,
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": service.MsgInvalidLogin},
		},
		{
			name:         "non-string field rejected",
			body:         `{"username":"alice","password":true}`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": validation.MsgInvalidType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Login(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			var got map[string]string
			if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			for k, v := range tt.expectedBody {
				if got[k] != v {
					t.Errorf("body[%q] = %q; want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest("GET", "/health", nil))

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}
	var got map[string]string
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got["status"] != "ok" {
		t.Errorf(`body["status"] = %q; want "ok"`, got["status"])
	}
}
