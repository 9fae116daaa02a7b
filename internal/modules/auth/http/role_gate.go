package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	plathttp "github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/http"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

// gateRule — префикс защищённой зоны и роли, которым туда можно.
// Таблица вместо вложенных if-ов: новая зона — новая строка.
type gateRule struct {
	prefix  string
	allowed map[domain.Role]bool
}

var gateRules = []gateRule{
	{"/developer", roles(domain.RoleDeveloper)},
	{"/super-admin", roles(domain.RoleSuperAdmin, domain.RoleDeveloper)},
	{"/admin", roles(domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleDeveloper)},
}

func roles(rr ...domain.Role) map[domain.Role]bool {
	m := make(map[domain.Role]bool, len(rr))
	for _, r := range rr {
		m[r] = true
	}
	return m
}

// RoleGateHandler решает на каждой навигации: пропустить, отправить на
// логин или на домашнюю страницу роли.
//
//   - нет сессии + защищённая зона -> /login?callbackUrl=<path>
//   - есть сессия, роль не из списка -> домашняя страница роли
//   - /unauthorized -> домой либо на логин
//   - всё остальное проходит без изменений
func RoleGateHandler(jwtMgr *security.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		claims := sessionFromRequest(c, jwtMgr)

		if path == "/unauthorized" {
			if claims == nil {
				return c.Redirect("/login", fiber.StatusFound)
			}
			return c.Redirect(domain.Role(claims.Role).Home(), fiber.StatusFound)
		}

		rule := matchGateRule(path)
		if rule == nil {
			return c.Next()
		}

		if claims == nil {
			return c.Redirect("/login?callbackUrl="+url.QueryEscape(path), fiber.StatusFound)
		}
		if !rule.allowed[domain.Role(claims.Role)] {
			// редирект домой без callbackUrl — цель и так известна
			return c.Redirect(domain.Role(claims.Role).Home(), fiber.StatusFound)
		}
		return c.Next()
	}
}

// зоны не пересекаются ("/super-admin" не начинается с "/admin/"),
// порядок проверки не важен
func matchGateRule(path string) *gateRule {
	for i := range gateRules {
		r := &gateRules[i]
		if path == r.prefix || strings.HasPrefix(path, r.prefix+"/") {
			return r
		}
	}
	return nil
}

func sessionFromRequest(c *fiber.Ctx, jwtMgr *security.JWTManager) *security.SessionClaims {
	tokenStr := c.Cookies(plathttp.SessionCookie)
	if tokenStr == "" {
		return nil
	}
	claims, err := jwtMgr.ParseSession(tokenStr)
	if err != nil {
		return nil
	}
	if claims.Status == string(domain.StatusBlocked) {
		return nil
	}
	return claims
}
