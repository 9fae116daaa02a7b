package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/db"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/config"
	phttp "github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/http"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/notify"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"

	authhttp "github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/http"
	contenthttp "github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/http"
)

func main() {
	// .env для локальной разработки; в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg := config.Load()

	dbpool := db.MustOpen(cfg.PGDSN)
	defer dbpool.Close()
	if err := db.Migrate(dbpool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	jwtMgr := security.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	authModule := authhttp.NewModulePG(dbpool, jwtMgr, cfg.ResetTokenSecret, cfg.ResetTokenTTL, cfg.IsProduction()).
		WithMailer(mailer)
	contentModule := contenthttp.NewModulePG(dbpool, jwtMgr).
		WithMailer(mailer, cfg.SMTPFrom)

	app := phttp.NewServer(phttp.Options{
		AppName:    "rareviewit-api",
		Middleware: []fiber.Handler{authModule.RoleGate()},
	}, authModule, contentModule)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
