package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/application/guard"
	"github.com/canek/storefront/internal/application/session"
)

// GuardMiddleware traduz a decisão do guard de rota para HTTP, reavaliada a
// cada requisição com o estado mais recente da sessão:
//
//	PENDING  -> 503 com placeholder; sem redirecionar (a sessão ainda reidrata)
//	DENIED_* -> 303 See Other para a home
//	ALLOWED  -> segue ao handler protegido
func GuardMiddleware(s guard.SessionState, req guard.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch decision := guard.Evaluate(s, req); decision {
		case guard.Pending:
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "CARREGANDO", Message: "Carregando...",
			})
		case guard.DeniedUnauthenticated, guard.DeniedWrongRole:
			return c.Redirect(session.RouteHome, fiber.StatusSeeOther)
		default:
			return c.Next()
		}
	}
}

// RequireAuthenticated guard "qualquer usuário autenticado".
func RequireAuthenticated(s guard.SessionState) fiber.Handler {
	return GuardMiddleware(s, guard.RequireAuthenticated)
}

// RequireBackoffice guard "ADMIN ou ESTOQUISTA".
func RequireBackoffice(s guard.SessionState) fiber.Handler {
	return GuardMiddleware(s, guard.RequireBackoffice)
}
