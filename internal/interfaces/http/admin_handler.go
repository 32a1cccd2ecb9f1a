package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/application/session"
	"github.com/canek/storefront/internal/infrastructure/backend"
)

// AdminHandler telas de CRUD do backoffice: produtos, usuários administradores
// e upload de imagem. Todas as chamadas ao backend levam o bearer token da
// sessão corrente; o guard de rota já garantiu papel de backoffice.
type AdminHandler struct {
	sessions *session.Store
	backend  *backend.Client
}

// NewAdminHandler constrói o handler.
func NewAdminHandler(sessions *session.Store, client *backend.Client) *AdminHandler {
	return &AdminHandler{sessions: sessions, backend: client}
}

// ListProducts todos os produtos, ativos e inativos.
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.backend.ListAllProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// CreateProduct cadastra um produto. Exige ao menos uma imagem, como o
// formulário original.
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Imagens) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "adicione pelo menos uma imagem"})
	}
	if err := h.backend.CreateProduct(c.UserContext(), h.sessions.Token(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Produto cadastrado com sucesso!"})
}

// UpdateProduct atualiza um produto existente.
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.backend.UpdateProduct(c.UserContext(), h.sessions.Token(), int64(id), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Produto atualizado com sucesso!"})
}

// ToggleProductStatus ativa/inativa um produto.
func (h *AdminHandler) ToggleProductStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.backend.ToggleProductStatus(c.UserContext(), h.sessions.Token(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Status do produto alterado."})
}

// ListAdmins usuários do backoffice.
func (h *AdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.backend.ListAdmins(c.UserContext(), h.sessions.Token())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(admins)
}

// GetAdmin um usuário do backoffice por id.
func (h *AdminHandler) GetAdmin(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	admin, err := h.backend.GetAdmin(c.UserContext(), h.sessions.Token(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(admin)
}

// CreateAdmin cadastra um usuário do backoffice.
func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var in dto.AdminUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.NomeCompleto == "" || in.Email == "" || in.Cargo == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nomeCompleto, email, cargo e senha são requeridos"})
	}
	if err := h.backend.CreateAdmin(c.UserContext(), h.sessions.Token(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Usuário criado com sucesso!"})
}

// UpdateAdmin atualiza um usuário do backoffice. Senha vazia preserva a atual.
func (h *AdminHandler) UpdateAdmin(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.AdminUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.backend.UpdateAdmin(c.UserContext(), h.sessions.Token(), int64(id), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Administrador atualizado com sucesso!"})
}

// ToggleAdminStatus ativa/inativa um usuário do backoffice.
func (h *AdminHandler) ToggleAdminStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.backend.ToggleAdminStatus(c.UserContext(), h.sessions.Token(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Status do usuário alterado."})
}

// Upload repassa uma imagem ao backend e devolve a URL atribuída.
func (h *AdminHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "arquivo 'file' é requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	out, err := h.backend.Upload(c.UserContext(), h.sessions.Token(), fh.Filename, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
