package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"chestAnalyzer/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// AdminAuthMiddleware guards operator endpoints with a bearer JWT signed
// by the shared secret. The token must carry role=admin.
func AdminAuthMiddleware(secretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Message: "Missing authorization header",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Message: "Invalid authorization format",
				})
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Error("Failed to parse JWT", err)
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Message: "Invalid token",
				})
			}

			role, _ := claims["role"].(string)
			if role != "admin" {
				return c.JSON(http.StatusForbidden, errorResponse{
					Message: "Admin role required",
				})
			}

			c.Set("role", role)
			return next(c)
		}
	}
}
