package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
)

type testimonialReq struct {
	Author    string `json:"author" validate:"required,min=2,max=100"`
	Company   string `json:"company" validate:"max=100"`
	Quote     string `json:"quote" validate:"required,min=5,max=2000"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Published bool   `json:"published"`
}

func ListTestimonialsHandler(repo domain.TestimonialRepo, publishedOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := repo.List(publishedOnly)
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"testimonials": items})
	}
}

func CreateTestimonialHandler(repo domain.TestimonialRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req testimonialReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		t, err := repo.Create(domain.Testimonial{
			Author: req.Author, Company: req.Company, Quote: req.Quote,
			Rating: req.Rating, Published: req.Published,
		})
		if err != nil {
			return serverError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

func UpdateTestimonialHandler(repo domain.TestimonialRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req testimonialReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		err := repo.Update(domain.Testimonial{
			ID: c.Params("id"), Author: req.Author, Company: req.Company,
			Quote: req.Quote, Rating: req.Rating, Published: req.Published,
		})
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Testimonial updated"})
	}
}

func DeleteTestimonialHandler(repo domain.TestimonialRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.Delete(c.Params("id")); err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Testimonial deleted"})
	}
}
