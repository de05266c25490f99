package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/api/middleware"
	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (*domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)

	loggedOut []string
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(_ context.Context, tokenID string, _ time.Time) error {
	s.loggedOut = append(s.loggedOut, tokenID)
	return nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(_ context.Context, input ports.SignupInput) (*domain.User, error) {
			return &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"name":"Alice","email":"alice@x.com","password":"longenough"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/signup", body)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup handler failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		User domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %q", resp.User.Role)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_SignupRejectsShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"name":"Alice","email":"alice@x.com","password":"short"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/signup", body)

	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_LoginReturnsToken(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, _ string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@x.com","password":"longenough"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("login handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
}

func TestAuthHandler_LoginFailurePropagatesDomainError(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@x.com","password":"wrongpass"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/login", body)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_LogoutRevokesSessionToken(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/logout", "")
	c.Set(middleware.SessionKey, domain.Session{
		UserID:    "u1",
		Role:      domain.RoleClient,
		TokenID:   "jti-42",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout handler failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "jti-42" {
		t.Fatalf("expected jti-42 to be revoked, got %v", svc.loggedOut)
	}
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/logout", "")

	err := h.Logout(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
