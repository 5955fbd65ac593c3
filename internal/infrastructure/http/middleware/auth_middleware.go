package middleware

import (
	stdErrors "errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/meetsum/meeting-summarizer/errors"
	"github.com/meetsum/meeting-summarizer/internal/usecase/auth"
	"github.com/meetsum/meeting-summarizer/pkg/jwt"
)

const (
	// UserIDContextKey is the echo context key holding the caller's uuid
	UserIDContextKey = "user_id"
	// ClaimsContextKey is the echo context key holding the token claims
	ClaimsContextKey = "claims"
)

// EchoAuth returns an Echo middleware that validates the bearer token and
// sets "user_id" (uuid.UUID) and "claims" (*jwt.Claims) into the context
func EchoAuth(authService auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := authService.ResolveToken(token)
			if err != nil {
				var appErr apperrors.AppError
				if stdErrors.As(err, &appErr) {
					return echo.NewHTTPError(appErr.HTTPCode, appErr.Message)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(UserIDContextKey, claims.UserID)
			c.Set(ClaimsContextKey, claims)

			return next(c)
		}
	}
}

// UserID retrieves the authenticated caller's id from the echo context
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return id, ok
}

// Claims retrieves the token claims from the echo context
func Claims(c echo.Context) (*jwt.Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*jwt.Claims)
	return claims, ok
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	// Cookie fallback for browser clients.
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}
