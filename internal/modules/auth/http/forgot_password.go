package http

import (
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/otp"
)

type forgotReq struct {
	Email string `json:"email"`
}

// ForgotPasswordHandler — первый шаг сброса: выпускаем код и шлём на почту.
// Ответ одинаковый для существующих и несуществующих аккаунтов, чтобы по
// нему нельзя было перебирать email-ы.
func ForgotPasswordHandler(userRepo domain.UserRepo, otpRepo domain.OTPRepo, mailer ResetMailer, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req forgotReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Invalid request."})
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Invalid email address."})
		}

		u, err := userRepo.GetByEmail(req.Email)
		if err != nil || u == nil {
			// аккаунта нет — отвечаем так же, как если бы был
			return c.JSON(fiber.Map{"ok": true})
		}

		code, err := otp.GenerateCode(otp.DefaultLength)
		if err != nil {
			return serverFailure(c)
		}
		hash, err := otp.HashCode(code)
		if err != nil {
			return serverFailure(c)
		}

		now := time.Now().UTC()
		if err := otpRepo.Save(domain.PasswordResetOTP{
			Email:     u.Email,
			CodeHash:  hash,
			ExpiresAt: now.Add(ttl),
			CreatedAt: now,
		}); err != nil {
			log.Printf("forgot-password: save otp for %s: %v", u.Email, err)
			return serverFailure(c)
		}

		// письмо уже после записи в БД: если SMTP упал, код сгорит по TTL,
		// а наружу утечки "есть/нет аккаунта" всё равно не будет
		if mailer != nil {
			if err := mailer.SendResetCode(c.Context(), u.Email, code, ttl); err != nil {
				log.Printf("forgot-password: send code to %s: %v", u.Email, err)
			}
		}

		return c.JSON(fiber.Map{"ok": true})
	}
}

func serverFailure(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"ok":      false,
		"message": "Something went wrong. Please try again later.",
	})
}
