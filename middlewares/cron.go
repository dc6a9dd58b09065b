package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireCronSecret guards the scheduler-invoked endpoints. The external
// scheduler sends "Authorization: Bearer <CRON_SECRET>"; an empty configured
// secret disables the endpoints rather than leaving them open.
func RequireCronSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" || c.Request().Header.Get("Authorization") != "Bearer "+secret {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
			}
			return next(c)
		}
	}
}
