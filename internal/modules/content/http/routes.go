package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	authdomain "github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
	pg "github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/infra/pg"
	plathttp "github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/http"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/notify"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

var validate = validator.New()

// Module — витрина и её админка: услуги, команда, отзывы, портфолио, заявки.
type Module struct {
	services     domain.ServiceRepo
	team         domain.TeamRepo
	testimonials domain.TestimonialRepo
	portfolio    domain.PortfolioRepo
	contacts     domain.ContactRepo
	jwtMgr       *security.JWTManager

	mailer      *notify.Mailer
	noticeEmail string // куда слать уведомления о заявках
}

func NewModulePG(db *pgxpool.Pool, jwtMgr *security.JWTManager) *Module {
	return &Module{
		services:     pg.NewServiceRepo(db),
		team:         pg.NewTeamRepo(db),
		testimonials: pg.NewTestimonialRepo(db),
		portfolio:    pg.NewPortfolioRepo(db),
		contacts:     pg.NewContactRepo(db),
		jwtMgr:       jwtMgr,
	}
}

func (m *Module) WithMailer(ma *notify.Mailer, noticeEmail string) *Module {
	m.mailer = ma
	m.noticeEmail = noticeEmail
	return m
}

func (m *Module) Register(r fiber.Router) {
	// -------- public (страницы сайта читают отсюда) --------
	r.Get("/services", ListServicesHandler(m.services, true))
	r.Get("/services/:slug", GetServiceHandler(m.services))
	r.Get("/team", ListTeamHandler(m.team))
	r.Get("/testimonials", ListTestimonialsHandler(m.testimonials, true))
	r.Get("/portfolio", ListPortfolioHandler(m.portfolio, true))
	r.Get("/portfolio/:slug", GetPortfolioHandler(m.portfolio))
	r.Post("/contact", CreateContactHandler(m.contacts, m.mailer, m.noticeEmail))

	// -------- admin --------
	admin := r.Group("/admin",
		plathttp.SessionAuth(m.jwtMgr),
		plathttp.RequireRoles(
			string(authdomain.RoleAdmin),
			string(authdomain.RoleSuperAdmin),
			string(authdomain.RoleDeveloper),
		),
	)
	admin.Get("/services", ListServicesHandler(m.services, false))
	admin.Post("/services", CreateServiceHandler(m.services))
	admin.Put("/services/:id", UpdateServiceHandler(m.services))
	admin.Delete("/services/:id", DeleteServiceHandler(m.services))

	admin.Post("/team", CreateTeamHandler(m.team))
	admin.Put("/team/:id", UpdateTeamHandler(m.team))
	admin.Delete("/team/:id", DeleteTeamHandler(m.team))

	admin.Get("/testimonials", ListTestimonialsHandler(m.testimonials, false))
	admin.Post("/testimonials", CreateTestimonialHandler(m.testimonials))
	admin.Put("/testimonials/:id", UpdateTestimonialHandler(m.testimonials))
	admin.Delete("/testimonials/:id", DeleteTestimonialHandler(m.testimonials))

	admin.Get("/portfolio", ListPortfolioHandler(m.portfolio, false))
	admin.Post("/portfolio", CreatePortfolioHandler(m.portfolio))
	admin.Put("/portfolio/:id", UpdatePortfolioHandler(m.portfolio))
	admin.Delete("/portfolio/:id", DeletePortfolioHandler(m.portfolio))

	admin.Get("/contact-submissions", ListContactsHandler(m.contacts))
	admin.Post("/contact-submissions/:id/resolve", ResolveContactHandler(m.contacts))
}
