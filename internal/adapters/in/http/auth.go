package http

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

type authClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token of every request and stores the
// caller's user id in the request context. Tokens are HS256 signed with the
// shared secret; any other signing method is rejected.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := parseBearerToken(ctx.Request().Header.Get("Authorization"), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing token",
				})
			}

			ctx.Set(userIDContextKey, userID)
			return next(ctx)
		}
	}
}

func parseBearerToken(header, secret string) (uint64, error) {
	if secret == "" {
		return 0, errors.New("jwt secret is empty")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, errors.New("invalid authorization header")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return 0, err
	}

	if claims.UserID == 0 {
		return 0, errors.New("invalid claims")
	}

	return claims.UserID, nil
}

// userIDFromContext returns the authenticated caller's id set by AuthMiddleware.
func userIDFromContext(ctx echo.Context) (uint64, bool) {
	userID, ok := ctx.Get(userIDContextKey).(uint64)
	return userID, ok
}
