package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/api/middleware"
	"github.com/agrovia/farm-management/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails before any service call: a missing or incomplete session means
// the middleware did not run, so the request must not touch protected data.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess, ok := c.Get(middleware.SessionKey).(domain.Session)
	if !ok || sess.UserID == "" || !domain.ValidRole(sess.Role) {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sess, nil
}
