package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
)

type loginDTO struct {
	ID        string `json:"id"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	CreatedAt string `json:"created_at"`
}

type loginHistoryResp struct {
	Logins []loginDTO `json:"logins"`
	Total  int        `json:"total"`
	Page   int        `json:"page"`
	Limit  int        `json:"limit"`
}

// LoginHistoryHandler — страница "история входов" в профиле.
func LoginHistoryHandler(logins domain.LoginRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorizedJSON(c)
		}

		page, _ := strconv.Atoi(c.Query("page", "1"))
		limit, _ := strconv.Atoi(c.Query("limit", "10"))
		if page <= 0 {
			page = 1
		}
		if limit <= 0 || limit > 100 {
			limit = 10
		}

		items, total, err := logins.ListByUser(uid, page, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not load login history",
			})
		}

		out := make([]loginDTO, 0, len(items))
		for _, l := range items {
			out = append(out, loginDTO{
				ID:        l.ID,
				IPAddress: l.IPAddress,
				UserAgent: l.UserAgent,
				CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		return c.JSON(loginHistoryResp{
			Logins: out,
			Total:  total,
			Page:   page,
			Limit:  limit,
		})
	}
}
