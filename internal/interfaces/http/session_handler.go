package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/application/session"
	"github.com/canek/storefront/internal/infrastructure/backend"
)

// SessionHandler login, logout, cadastro e consulta da sessão corrente.
type SessionHandler struct {
	store   *session.Store
	nav     *Navigator
	backend *backend.Client
}

// NewSessionHandler constrói o handler.
func NewSessionHandler(store *session.Store, nav *Navigator, client *backend.Client) *SessionHandler {
	return &SessionHandler{store: store, nav: nav, backend: client}
}

// Login autentica um cliente no backend e registra a sessão.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	return h.login(c, false)
}

// BackofficeLogin autentica uma conta do backoffice.
func (h *SessionHandler) BackofficeLogin(c *fiber.Ctx) error {
	return h.login(c, true)
}

func (h *SessionHandler) login(c *fiber.Ctx, backoffice bool) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e senha são requeridos"})
	}

	login := h.backend.Login
	if backoffice {
		login = h.backend.AdminLogin
	}
	payload, err := login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.Login(payload); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.sessionResponse())
}

// Register cadastra um novo cliente no backend.
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.NomeCompleto == "" || in.CPF == "" || in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nomeCompleto, cpf, email e senha são requeridos"})
	}
	if err := h.backend.Register(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Cadastro realizado com sucesso!"})
}

// Logout encerra a sessão. Idempotente.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout()
	return c.JSON(h.sessionResponse())
}

// Session estado corrente da sessão e a rota de destino da última navegação.
func (h *SessionHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.sessionResponse())
}

func (h *SessionHandler) sessionResponse() dto.SessionResponse {
	out := dto.SessionResponse{
		Authenticated: h.store.IsAuthenticated(),
		Loading:       h.store.Loading(),
		Route:         h.nav.Current(),
	}
	if s := h.store.Session(); s != nil {
		out.Role = string(s.Role)
		out.User = s.User
	}
	return out
}
