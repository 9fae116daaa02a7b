package http

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/otp"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/resettoken"
)

// ResetTokenCookie хранит подписанный токен между проверкой кода и
// установкой нового пароля.
const ResetTokenCookie = "reset_token"

type verifyCodeReq struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyResetCodeHandler — второй шаг сброса: сверяем код с последней
// пригодной записью. Совпал — запись гасим и выдаём reset-cookie.
func VerifyResetCodeHandler(otpRepo domain.OTPRepo, codec *resettoken.Codec, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req verifyCodeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Invalid request."})
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		req.Code = strings.TrimSpace(req.Code)

		now := time.Now().UTC()
		// только самая свежая запись: запросил новый код — старый сгорел
		rec, err := otpRepo.LatestEligible(req.Email, now)
		if err != nil {
			log.Printf("verify-code: lookup for %s: %v", req.Email, err)
			return serverFailure(c)
		}
		if rec == nil {
			// нет записи, истекла или попытки кончились — снаружи неотличимо
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Invalid or expired code."})
		}

		if !otp.VerifyCode(req.Code, rec.CodeHash) {
			if err := otpRepo.IncrementAttempts(rec.ID); err != nil {
				log.Printf("verify-code: bump attempts %s: %v", rec.ID, err)
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Incorrect code."})
		}

		if err := otpRepo.Consume(rec.ID, now); err != nil {
			log.Printf("verify-code: consume %s: %v", rec.ID, err)
			return serverFailure(c)
		}

		token, err := codec.Sign(req.Email)
		if err != nil {
			return serverFailure(c)
		}
		setResetCookie(c, token, codec.TTL(), secure)

		return c.JSON(fiber.Map{"ok": true})
	}
}

func setResetCookie(c *fiber.Ctx, token string, ttl time.Duration, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     ResetTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearResetCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     ResetTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
