package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
)

type teamReq struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Title     string `json:"title" validate:"max=100"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
	Bio       string `json:"bio"`
	SortOrder int    `json:"sort_order"`
}

func ListTeamHandler(repo domain.TeamRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := repo.List()
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"team": items})
	}
}

func CreateTeamHandler(repo domain.TeamRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req teamReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		m, err := repo.Create(domain.TeamMember{
			Name: req.Name, Title: req.Title, PhotoURL: req.PhotoURL,
			Bio: req.Bio, SortOrder: req.SortOrder,
		})
		if err != nil {
			return serverError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func UpdateTeamHandler(repo domain.TeamRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req teamReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := validate.Struct(req); err != nil {
			return validationError(c, err)
		}
		err := repo.Update(domain.TeamMember{
			ID: c.Params("id"), Name: req.Name, Title: req.Title,
			PhotoURL: req.PhotoURL, Bio: req.Bio, SortOrder: req.SortOrder,
		})
		if err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Team member updated"})
	}
}

func DeleteTeamHandler(repo domain.TeamRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.Delete(c.Params("id")); err != nil {
			return serverError(c)
		}
		return c.JSON(fiber.Map{"message": "Team member deleted"})
	}
}
