package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/core/domain"
)

func runRedirect(t *testing.T, sess domain.Session, areaRole, path string) (*httptest.ResponseRecorder, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionKey, sess)

	var ran bool
	next := func(c echo.Context) error {
		ran = true
		return c.NoContent(http.StatusOK)
	}

	err := RoleRedirect(areaRole)(next)(c)
	return rec, err, ran
}

func TestRoleRedirect_MatchingRolePasses(t *testing.T) {
	sess := domain.Session{UserID: "u1", Role: domain.RoleAdmin}
	_, err, ran := runRedirect(t, sess, domain.RoleAdmin, "/v1/admin/dashboard")
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if !ran {
		t.Fatalf("next handler never ran")
	}
}

func TestRoleRedirect_AdminSentToOwnDashboard(t *testing.T) {
	sess := domain.Session{UserID: "a1", Role: domain.RoleAdmin}
	rec, err, ran := runRedirect(t, sess, domain.RoleClient, "/v1/client/dashboard")
	if err != nil {
		t.Fatalf("redirect returned error: %v", err)
	}
	if ran {
		t.Fatalf("handler ran for the wrong role")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/v1/admin/dashboard" {
		t.Fatalf("expected redirect to admin dashboard, got %q", loc)
	}
}

func TestRoleRedirect_ClientSentToOwnDashboard(t *testing.T) {
	sess := domain.Session{UserID: "u1", Role: domain.RoleClient}
	rec, err, ran := runRedirect(t, sess, domain.RoleAdmin, "/v1/admin/dashboard")
	if err != nil {
		t.Fatalf("redirect returned error: %v", err)
	}
	if ran {
		t.Fatalf("handler ran for the wrong role")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/v1/client/dashboard" {
		t.Fatalf("expected redirect to client dashboard, got %q", loc)
	}
}
