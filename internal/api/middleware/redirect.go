package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/api/metrics"
	"github.com/agrovia/farm-management/internal/core/domain"
)

// RoleRedirect guards a role-scoped dashboard area. A session of the wrong
// role is not an error: it is sent to its own role's dashboard root with a
// 303, mirroring how the UI routes users after login.
func RoleRedirect(areaRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := c.Get(SessionKey).(domain.Session)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if sess.Role != areaRole {
				metrics.RoleRedirectsTotal.Inc()
				return c.Redirect(http.StatusSeeOther, sess.DashboardRoot())
			}
			return next(c)
		}
	}
}
