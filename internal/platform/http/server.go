package http

import (
	"github.com/gofiber/fiber/v2"
)

type Options struct {
	AppName string
	// Middleware вешается на всё приложение до регистрации модулей
	// (сюда идёт role gate — он должен видеть и страницы, и API).
	Middleware []fiber.Handler
}

func NewServer(opts Options, modules ...Module) *fiber.App {
	app := fiber.New(fiber.Config{AppName: opts.AppName})

	for _, mw := range opts.Middleware {
		app.Use(mw)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	for _, m := range modules {
		m.Register(v1)
	}

	// health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	return app
}
