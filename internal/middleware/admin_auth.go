package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"sales-analytics/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RequireAdminToken guards administrative endpoints with an HS256 JWT signed
// with the configured shared secret. Tokens are issued out of band; there is
// no user store behind this API.
func RequireAdminToken(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				// Admin endpoints are disabled without a configured secret
				return sendAuthError(c, errors.AuthInvalidToken)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return sendAuthError(c, errors.AuthMissingToken)
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				return sendAuthError(c, errors.AuthInvalidToken)
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return sendAuthError(c, errors.AuthInvalidToken)
			}

			return next(c)
		}
	}
}

func sendAuthError(c echo.Context, code errors.ErrorCode) error {
	response := errors.NewErrorResponse(code, GetTraceID(c))
	status := http.StatusUnauthorized
	return c.JSON(status, response)
}
