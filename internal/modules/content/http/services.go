package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
)

type serviceReq struct {
	Title     string `json:"title" validate:"required,min=2,max=120"`
	Slug      string `json:"slug" validate:"required,min=2,max=120"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	Published bool   `json:"published"`
}

func ListServicesHandler(repo domain.ServiceRepo, publishedOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := repo.List(publishedOnly)
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"services": items})
	}
}

func GetServiceHandler(repo domain.ServiceRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := repo.GetBySlug(c.Params("slug"))
		if err != nil {
			return serverError(c)
		}
		if s == nil || !s.Published {
			return notFound(c)
		}
		return c.JSON(s)
	}
}

func CreateServiceHandler(repo domain.ServiceRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req serviceReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		s, err := repo.Create(domain.Service{
			Title: req.Title, Slug: req.Slug, Summary: req.Summary, Body: req.Body,
			Icon: req.Icon, SortOrder: req.SortOrder, Published: req.Published,
		})
		if err != nil {
			return serverError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

func UpdateServiceHandler(repo domain.ServiceRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req serviceReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		err := repo.Update(domain.Service{
			ID: c.Params("id"), Title: req.Title, Slug: req.Slug, Summary: req.Summary,
			Body: req.Body, Icon: req.Icon, SortOrder: req.SortOrder, Published: req.Published,
		})
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Service updated"})
	}
}

func DeleteServiceHandler(repo domain.ServiceRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.Delete(c.Params("id")); err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Service deleted"})
	}
}

// общие ответы админки

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error_code": "INVALID_FIELDS",
		"message":    "Invalid request body",
	})
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error_code": "VALIDATION_ERROR",
		"message":    err.Error(),
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error_code": "NOT_FOUND",
		"message":    "Not found",
	})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error_code": "SERVER_ERROR",
		"message":    "Something went wrong",
	})
}
