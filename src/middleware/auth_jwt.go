package middleware

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"Backend-ZAB-Portal/src/models"
	"Backend-ZAB-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

func unauthorized(c *fiber.Ctx, reason string) error {
	return utils.HandleServiceError(c, fmt.Errorf("%w: %s", models.ErrUnauthorized, reason))
}

func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return unauthorized(c, "missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if errors.Is(err, utils.ErrTokenExpired) {
		return unauthorized(c, "token expired")
	}
	if err != nil {
		return unauthorized(c, "invalid token")
	}

	revoked, err := utils.IsTokenBlacklisted(c.Context(), tokenStr)
	if err != nil {
		log.Println("⚠️ blacklist check failed:", err)
	}
	if revoked {
		return unauthorized(c, "token has been revoked")
	}

	c.Locals("userId", claims.UserID)
	c.Locals("cid", claims.CID)
	c.Locals("roles", claims.Roles)

	return c.Next()
}

func rolesOf(c *fiber.Ctx) []string {
	roles, _ := c.Locals("roles").([]string)
	return roles
}

// RequireManagement อนุญาตเฉพาะ facility management (moderator)
func RequireManagement(c *fiber.Ctx) error {
	if !models.IsManagement(rolesOf(c)) {
		return utils.HandleServiceError(c, models.ErrForbidden)
	}
	return c.Next()
}

// RequireSelfOrManagement อนุญาตเมื่อ :param เป็น id ของผู้เรียกเอง หรือผู้เรียกเป็น management
func RequireSelfOrManagement(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userId").(string)
		if userID != "" && userID == c.Params(param) {
			return c.Next()
		}
		if models.IsManagement(rolesOf(c)) {
			return c.Next()
		}
		return utils.HandleServiceError(c, models.ErrForbidden)
	}
}
