package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders sets browser hardening headers on every response. HSTS is
// only sent in production, where the API sits behind TLS.
func SecurityHeaders(environment string) echo.MiddlewareFunc {
	hsts := environment == "production"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("X-Frame-Options", "DENY")
			header.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			header.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
			if hsts {
				header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			// Balances and transactions must not be cached
			header.Set("Cache-Control", "no-store, private")
			header.Set("Pragma", "no-cache")

			return next(c)
		}
	}
}
