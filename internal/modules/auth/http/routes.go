package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/infra"
	pg "github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/infra/pg"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/resettoken"
	plathttp "github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/http"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/notify"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

// Module wires up dependencies for the auth HTTP module.
type Module struct {
	userRepo  domain.UserRepo
	otpRepo   domain.OTPRepo
	loginRepo domain.LoginRepo
	jwtMgr    *security.JWTManager
	codec     *resettoken.Codec
	secure    bool // Secure-флаг на cookie, true в production

	mailer ResetMailer
}

// ResetMailer — то, что модулю нужно от почты. *notify.Mailer подходит,
// в тестах — стаб.
type ResetMailer interface {
	SendResetCode(ctx context.Context, to, code string, ttl time.Duration) error
}

func (m *Module) WithMailer(ma *notify.Mailer) *Module {
	m.mailer = ma
	return m
}

// NewModule — in-memory вариант для локальной разработки и тестов.
func NewModule(jwtSecret, resetSecret string, resetTTL time.Duration) *Module {
	return &Module{
		userRepo:  infra.NewMemUserRepo(),
		otpRepo:   infra.NewMemOTPRepo(),
		loginRepo: infra.NewMemLoginRepo(),
		jwtMgr:    security.NewJWTManager(jwtSecret, 24*time.Hour),
		codec:     resettoken.NewCodec(resetSecret, resetTTL),
	}
}

// NewModulePG creates PG-based repos.
func NewModulePG(db *pgxpool.Pool, jwtMgr *security.JWTManager, resetSecret string, resetTTL time.Duration, secure bool) *Module {
	return &Module{
		userRepo:  pg.NewUserRepo(db),
		otpRepo:   pg.NewOTPRepo(db),
		loginRepo: pg.NewLoginRepo(db),
		jwtMgr:    jwtMgr,
		codec:     resettoken.NewCodec(resetSecret, resetTTL),
		secure:    secure,
	}
}

func (m *Module) Register(r fiber.Router) {
	// -------- public --------
	r.Post("/sign-up", SignUpHandler(m.userRepo))
	r.Post("/sign-in", SignInHandler(m.userRepo, m.loginRepo, m.jwtMgr, m.secure))
	r.Post("/sign-out", SignOutHandler(m.secure))
	r.Post("/forgot-password", ForgotPasswordHandler(m.userRepo, m.otpRepo, m.mailer, m.codec.TTL()))
	r.Post("/forgot-password/verify", VerifyResetCodeHandler(m.otpRepo, m.codec, m.secure))
	r.Post("/reset-password", ResetPasswordHandler(m.userRepo, m.codec, m.secure))

	// -------- protected --------
	protected := r.Group("", plathttp.SessionAuth(m.jwtMgr))
	protected.Get("/user", GetProfileHandler(m.userRepo))
	protected.Patch("/user", UpdateProfileHandler(m.userRepo))
	protected.Post("/user/change-password", ChangePasswordHandler(m.userRepo))
	protected.Get("/user/logins", LoginHistoryHandler(m.loginRepo))
}

// RoleGate отдаёт gate-мидлварь с этим же jwt-менеджером (вешается на всё
// приложение, см. cmd/api).
func (m *Module) RoleGate() fiber.Handler {
	return RoleGateHandler(m.jwtMgr)
}
