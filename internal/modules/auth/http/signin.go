package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	plathttp "github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/http"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResp struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
	Role        string `json:"role,omitempty"`
	RedirectTo  string `json:"redirect_to,omitempty"`
}

func SignInHandler(userRepo domain.UserRepo, logins domain.LoginRepo, jwtMgr *security.JWTManager, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req signInReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Invalid request body",
			})
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		u, err := userRepo.GetByEmail(req.Email)
		if err != nil || u == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_CREDENTIALS",
				"message":    "Invalid email or password",
			})
		}

		if u.Status == domain.StatusBlocked {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error_code": "ACCOUNT_BLOCKED",
				"message":    "Account is blocked",
			})
		}

		ok, _ := security.CheckPassword(u.PasswordHash, req.Password)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_CREDENTIALS",
				"message":    "Invalid email or password",
			})
		}

		token, exp, err := jwtMgr.IssueSession(u.ID, string(u.Role), string(u.Status))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not create session",
			})
		}

		// история входов для профиля; сам вход от сбоя записи не ломаем
		_, _ = logins.Record(domain.LoginRecord{
			UserID:    u.ID,
			IPAddress: c.IP(),
			UserAgent: c.Get("User-Agent"),
		})

		// браузеру — cookie, API-клиентам — тот же токен в теле
		c.Cookie(&fiber.Cookie{
			Name:     plathttp.SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  exp,
			MaxAge:   int(time.Until(exp).Seconds()),
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(signInResp{
			Message:     "Signed in",
			AccessToken: token,
			ExpiresAt:   exp.UTC().Format(time.RFC3339),
			Role:        string(u.Role),
			RedirectTo:  u.Role.Home(),
		})
	}
}

func SignOutHandler(secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     plathttp.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(fiber.Map{"message": "Signed out"})
	}
}
