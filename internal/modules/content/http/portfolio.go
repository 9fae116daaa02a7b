package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
)

type portfolioReq struct {
	Title     string   `json:"title" validate:"required,min=2,max=120"`
	Slug      string   `json:"slug" validate:"required,min=2,max=120"`
	Client    string   `json:"client" validate:"max=100"`
	Summary   string   `json:"summary"`
	CoverURL  string   `json:"cover_url" validate:"omitempty,url"`
	Tags      []string `json:"tags" validate:"max=20,dive,min=1,max=40"`
	Published bool     `json:"published"`
}

func ListPortfolioHandler(repo domain.PortfolioRepo, publishedOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := repo.List(publishedOnly)
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"portfolio": items})
	}
}

func GetPortfolioHandler(repo domain.PortfolioRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := repo.GetBySlug(c.Params("slug"))
		if err != nil {
			return serverError(c)
		}
		if p == nil || !p.Published {
			return notFound(c)
		}
		return c.JSON(p)
	}
}

func CreatePortfolioHandler(repo domain.PortfolioRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req portfolioReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		p, err := repo.Create(domain.PortfolioItem{
			Title: req.Title, Slug: req.Slug, Client: req.Client, Summary: req.Summary,
			CoverURL: req.CoverURL, Tags: req.Tags, Published: req.Published,
		})
		if err != nil {
			return serverError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

func UpdatePortfolioHandler(repo domain.PortfolioRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req portfolioReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		err := repo.Update(domain.PortfolioItem{
			ID: c.Params("id"), Title: req.Title, Slug: req.Slug, Client: req.Client,
			Summary: req.Summary, CoverURL: req.CoverURL, Tags: req.Tags, Published: req.Published,
		})
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Portfolio item updated"})
	}
}

func DeletePortfolioHandler(repo domain.PortfolioRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.Delete(c.Params("id")); err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Portfolio item deleted"})
	}
}
