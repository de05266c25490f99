package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrovia/farm-management/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/farms/f1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrFarmNotFound, http.StatusNotFound},
		{domain.ErrCropNotFound, http.StatusNotFound},
		{domain.ErrEventNotFound, http.StatusNotFound},
		{domain.ErrDashboardNotFound, http.StatusNotFound},
		{domain.ErrHealthNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := handleError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_InvalidCredentialsMessageIsGeneric(t *testing.T) {
	rec := handleError(t, domain.ErrInvalidCredentials)
	if !strings.Contains(rec.Body.String(), "invalid email or password") {
		t.Fatalf("expected generic credentials message, got %s", rec.Body.String())
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := handleError(t, errors.New("mongo: connection reset by peer"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal error details leaked: %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid payload") {
		t.Fatalf("expected message passthrough, got %s", rec.Body.String())
	}
}
