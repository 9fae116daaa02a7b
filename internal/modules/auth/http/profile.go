package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

func GetProfileHandler(userRepo domain.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorizedJSON(c)
		}

		u, err := userRepo.GetByID(uid)
		if err != nil || u == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error_code": "NOT_FOUND",
				"message":    "User not found",
			})
		}

		return c.JSON(fiber.Map{
			"user_id":    u.ID,
			"email":      u.Email,
			"username":   u.Username,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"role":       u.Role,
			"status":     u.Status,
			"created_at": u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
}

type updateProfileReq struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=2,max=50"`
}

func UpdateProfileHandler(userRepo domain.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorizedJSON(c)
		}

		var req updateProfileReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Invalid request body",
			})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "VALIDATION_ERROR",
				"message":    err.Error(),
			})
		}

		if err := userRepo.UpdateProfile(uid, req.FirstName, req.LastName); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not update profile",
			})
		}
		return c.JSON(fiber.Map{"message": "Profile updated"})
	}
}

type changePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordHandler — смена пароля залогиненным пользователем,
// в отличие от сброса по коду требует старый пароль.
func ChangePasswordHandler(userRepo domain.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorizedJSON(c)
		}

		var req changePasswordReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Invalid request body",
			})
		}
		if len(req.NewPassword) < 8 || len(req.NewPassword) > 50 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_PASSWORD",
				"message":    "Password must be 8-50 characters",
			})
		}

		u, err := userRepo.GetByID(uid)
		if err != nil || u == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error_code": "NOT_FOUND",
				"message":    "User not found",
			})
		}

		ok, _ := security.CheckPassword(u.PasswordHash, req.OldPassword)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_CREDENTIALS",
				"message":    "Old password is incorrect",
			})
		}

		hash, err := security.HashPassword(req.NewPassword)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not process password",
			})
		}
		if err := userRepo.UpdatePassword(uid, hash); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not change password",
			})
		}
		return c.JSON(fiber.Map{"message": "Password changed"})
	}
}

func unauthorizedJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error_code": "UNAUTHORIZED",
		"message":    "Authentication required",
	})
}
