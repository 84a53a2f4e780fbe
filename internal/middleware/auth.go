package middleware

import (
	"errors"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the echo context key for the authenticated user ID
const UserIDContextKey = "user_id"

// Identity resolves the caller from a bearer token when one is supplied.
// Requests without an Authorization header pass through anonymously; the
// ledger service decides which operations need a user.
func Identity(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthInvalidToken, apierrors.WithDetails("Token has expired"))
				}
				return handlers.SendError(c, apierrors.AuthInvalidToken)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidToken, apierrors.WithDetails("Invalid user ID in token"))
			}

			c.Set(UserIDContextKey, userID)
			c.Set("user_email", claims.Email)

			req := c.Request()
			c.SetRequest(req.WithContext(services.WithUserID(req.Context(), userID)))

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user ID, if any
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return userID, ok
}
