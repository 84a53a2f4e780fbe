package middleware

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionIDContextKey is the echo context key for the browser session ID
const SessionIDContextKey = "session_id"

// LedgerResolver hands out the ledger service bound to a browser session
type LedgerResolver interface {
	Resolve(sessionID string, demoFlag bool) services.LedgerServiceInterface
}

// Session binds each request to its session's ledger service. A session
// cookie is issued when the request carries none. The demo mode cookie only
// seeds the mode of a session the first time it is seen.
func Session(resolver LedgerResolver, cfg config.EngineConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := sessionIDFromCookie(c, cfg.SessionCookieName)
			if sessionID == "" {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cfg.SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.SessionTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			demoFlag := cfg.DemoModeDefault
			if cookie, err := c.Cookie(cfg.DemoModeCookieName); err == nil {
				if parsed, err := strconv.ParseBool(cookie.Value); err == nil {
					demoFlag = parsed
				}
			}

			c.Set(SessionIDContextKey, sessionID)
			c.Set(handlers.LedgerContextKey, resolver.Resolve(sessionID, demoFlag))

			return next(c)
		}
	}
}

// sessionIDFromCookie returns the session cookie value when it holds a UUID
func sessionIDFromCookie(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}
