package http

import (
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/notify"
)

type contactReq struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}

// CreateContactHandler — публичная форма "связаться с нами".
func CreateContactHandler(repo domain.ContactRepo, mailer *notify.Mailer, noticeEmail string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req contactReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return validationError(c, err)
		}

		s, err := repo.Create(domain.ContactSubmission{
			Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message,
		})
		if err != nil {
			return serverError(c)
		}

		// уведомление админам; сбой почты заявку не отменяет
		if mailer != nil && noticeEmail != "" {
			if err := mailer.SendContactNotice(c.Context(), noticeEmail, s.Name, s.Subject); err != nil {
				log.Printf("contact: notice mail: %v", err)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thanks, we will get back to you soon"})
	}
}

func ListContactsHandler(repo domain.ContactRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		unresolvedOnly := c.QueryBool("unresolved", false)
		items, err := repo.List(unresolvedOnly)
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"submissions": items})
	}
}

func ResolveContactHandler(repo domain.ContactRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.Resolve(c.Params("id"), time.Now().UTC()); err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Submission resolved"})
	}
}
