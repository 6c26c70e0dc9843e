package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"phonestore/internal/auth"
	"phonestore/internal/domain"
	applog "phonestore/internal/log"
)

// RequireUser verifies the bearer token on mutating routes and stores
// the derived identity in Locals("user"). Any authenticated subject may
// mutate any listing; there is no role check.
func RequireUser(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.Set("WWW-Authenticate", "Bearer")
			applog.Security(c, "auth.header.missing", nil)
			return jsonError(c, fiber.StatusUnauthorized, "missing or invalid authorization header")
		}

		claims, err := auth.VerifyToken(secret, tokenStr)
		if err != nil {
			c.Set("WWW-Authenticate", "Bearer")
			applog.Security(c, "auth.token.invalid", map[string]any{"reason": err.Error()})
			return jsonError(c, fiber.StatusUnauthorized, "Invalid authentication token: "+err.Error())
		}

		u, err := auth.UserFromClaims(claims)
		if err != nil {
			c.Set("WWW-Authenticate", "Bearer")
			applog.Security(c, "auth.subject.missing", nil)
			return jsonError(c, fiber.StatusUnauthorized, "Could not validate credentials")
		}

		c.Locals("user", u)
		return c.Next()
	}
}

// CurrentUser returns the identity RequireUser stored, or nil.
func CurrentUser(c *fiber.Ctx) *domain.AuthUser {
	u, _ := c.Locals("user").(*domain.AuthUser)
	return u
}
