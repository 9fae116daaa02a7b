package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/resettoken"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

type resetReq struct {
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// ResetPasswordHandler — финальный шаг. Email берём только из подписанного
// cookie-токена, из тела запроса — никогда: иначе можно сбросить чужой аккаунт.
func ResetPasswordHandler(userRepo domain.UserRepo, codec *resettoken.Codec, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req resetReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Invalid request."})
		}
		if len(req.Password) < 8 || len(req.Password) > 50 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Password must be 8-50 characters."})
		}
		if req.Password != req.Confirm {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Passwords do not match."})
		}

		cookie := c.Cookies(ResetTokenCookie)
		if cookie == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Reset session not found."})
		}

		claims, err := codec.Verify(cookie)
		if err != nil {
			if !errors.Is(err, resettoken.ErrInvalid) {
				log.Printf("reset-password: verify token: %v", err)
			}
			clearResetCookie(c, secure)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Reset session expired or invalid."})
		}

		u, err := userRepo.GetByEmail(claims.Email)
		if err != nil || u == nil {
			clearResetCookie(c, secure)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "User not found."})
		}

		hash, err := security.HashPassword(req.Password)
		if err != nil {
			return serverFailure(c)
		}
		if err := userRepo.UpdatePassword(u.ID, hash); err != nil {
			log.Printf("reset-password: update password for %s: %v", u.ID, err)
			return serverFailure(c)
		}

		// токен одноразовый, даже если по exp ещё жив
		clearResetCookie(c, secure)
		return c.JSON(fiber.Map{"ok": true})
	}
}
