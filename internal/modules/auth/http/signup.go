package http

import (
	"net/mail"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

type signUpReq struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Password  string `json:"password" validate:"required,min=8,max=50"`
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
}

var validate = validator.New()

type signUpResp struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func SignUpHandler(userRepo domain.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req signUpReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Invalid request body",
			})
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		req.Username = strings.TrimSpace(req.Username)

		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "VALIDATION_ERROR",
				"message":    err.Error(),
			})
		}
		// строгая проверка email вдобавок к validator-у
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_EMAIL",
				"message":    "Invalid email address",
			})
		}

		if exists, _ := userRepo.ExistsByEmail(req.Email); exists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error_code": "EMAIL_TAKEN",
				"message":    "Email is already registered",
			})
		}
		if exists, _ := userRepo.ExistsByUsername(req.Username); exists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error_code": "USERNAME_TAKEN",
				"message":    "Username is already taken",
			})
		}

		pwHash, err := security.HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not process password",
			})
		}

		// регистрация всегда с ролью USER; админов назначают руками
		u, err := userRepo.Create(domain.CreateUserParams{
			Email:        req.Email,
			Username:     req.Username,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         domain.RoleUser,
			PasswordHash: pwHash,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not create account",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(signUpResp{
			Message: "Account created",
			UserID:  u.ID,
		})
	}
}
