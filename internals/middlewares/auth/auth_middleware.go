package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"perseverantia_backend/internals/configs"
	helper "perseverantia_backend/internals/helpers"
)

// parseToken validates a bearer token and returns its claims.
func parseToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func storeClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["username"].(string); ok {
		c.Locals("username", v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals("role", v)
	}
	if v, ok := claims["schoolName"].(string); ok {
		c.Locals("schoolName", v)
	}
}

// AuthMiddleware requires a valid token from either a school or an admin.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
		}
		claims, err := parseToken(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		storeClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware stores claims when a token is present but never rejects.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := bearerToken(c); raw != "" {
			if claims, err := parseToken(raw); err == nil {
				storeClaims(c, claims)
			}
		}
		return c.Next()
	}
}

// RequireAdmin only lets tokens with the admin role through.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
		}
		claims, err := parseToken(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if role, _ := claims["role"].(string); role != "admin" {
			return helper.JsonError(c, fiber.StatusForbidden, "Admin access required")
		}
		storeClaims(c, claims)
		return c.Next()
	}
}
