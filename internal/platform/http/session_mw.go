package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

// SessionCookie — HTTP-only cookie с сессионным JWT для навигации по сайту.
const SessionCookie = "session_token"

// SessionAuth пускает дальше только с валидной сессией: Bearer-заголовок
// для API-клиентов или cookie для браузера. Кладёт user_id/role/status в Locals.
func SessionAuth(jwtMgr *security.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			tokenStr = c.Cookies(SessionCookie)
		}
		if tokenStr == "" {
			return unauthorized(c)
		}
		claims, err := jwtMgr.ParseSession(tokenStr)
		if err != nil {
			return unauthorized(c)
		}
		if claims.Status == "BLOCKED" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error_code": "ACCOUNT_BLOCKED",
				"message":    "Account is blocked",
			})
		}
		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		c.Locals("status", claims.Status)
		return c.Next()
	}
}

// RequireRoles — поверх SessionAuth: пускает только перечисленные роли.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error_code": "FORBIDDEN",
				"message":    "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error_code": "UNAUTHORIZED",
		"message":    "Authentication required",
	})
}
