package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/infrastructure/backend"
)

// CatalogHandler vitrine pública: listagem de produtos ativos e detalhe.
type CatalogHandler struct {
	backend *backend.Client
	detail  *backend.DetailLoader
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(client *backend.Client, detail *backend.DetailLoader) *CatalogHandler {
	return &CatalogHandler{backend: client, detail: detail}
}

// List produtos ativos da vitrine.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.backend.ListActiveProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Detail detalhe de um produto, via loader com token de geração: uma resposta
// superada por navegação mais recente é descartada e sinalizada com 204.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	product, applied, err := h.detail.Load(c.UserContext(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	if !applied {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(product)
}
