package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/canek/storefront/internal/application/cart"
	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/domain/entity"
	"github.com/canek/storefront/internal/infrastructure/backend"
)

// CartHandler operações do carrinho e do painel lateral.
type CartHandler struct {
	store   *cart.Store
	backend *backend.Client
}

// NewCartHandler constrói o handler.
func NewCartHandler(store *cart.Store, client *backend.Client) *CartHandler {
	return &CartHandler{store: store, backend: client}
}

// Get devolve o carrinho com subtotal e total recomputados.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse())
}

// AddItem busca o produto no catálogo, adiciona ao carrinho e abre o painel
// lateral, como o fluxo "comprar" da vitrine.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	product, err := h.backend.GetProduct(c.UserContext(), in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	h.store.AddItem(entity.CartProduct{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.PrincipalImagePath(),
	})
	h.store.OpenSidePanel()
	return c.Status(fiber.StatusCreated).JSON(h.cartResponse())
}

// SetQuantity define a quantidade de um item (piso em 1; id ausente é no-op).
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	h.store.SetQuantity(int64(id), in.Quantity)
	return c.JSON(h.cartResponse())
}

// Decrement reduz a quantidade de um item em 1, com piso em 1.
func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	h.store.DecrementQuantity(int64(id))
	return c.JSON(h.cartResponse())
}

// RemoveItem remove o item do carrinho.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	h.store.RemoveItem(int64(id))
	return c.JSON(h.cartResponse())
}

// Clear esvazia o carrinho e zera o frete.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.store.Clear()
	return c.JSON(h.cartResponse())
}

// QuoteShipping calcula as opções de frete para o CEP informado.
func (h *CartHandler) QuoteShipping(c *fiber.Ctx) error {
	var in dto.ShippingQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	options, err := h.backend.QuoteShipping(c.UserContext(), in.CEP)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(options)
}

// SelectShipping registra o valor da opção de frete escolhida.
func (h *CartHandler) SelectShipping(c *fiber.Ctx) error {
	var in dto.SelectShippingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	h.store.SetShippingCost(in.Valor)
	return c.JSON(h.cartResponse())
}

// OpenSidePanel abre o painel lateral do carrinho.
func (h *CartHandler) OpenSidePanel(c *fiber.Ctx) error {
	h.store.OpenSidePanel()
	return c.JSON(h.cartResponse())
}

// CloseSidePanel fecha o painel lateral do carrinho.
func (h *CartHandler) CloseSidePanel(c *fiber.Ctx) error {
	h.store.CloseSidePanel()
	return c.JSON(h.cartResponse())
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	return dto.CartResponse{
		Items:         h.store.Items(),
		Subtotal:      h.store.Subtotal(),
		ShippingCost:  h.store.ShippingCost(),
		Total:         h.store.Total(),
		SidePanelOpen: h.store.SidePanelOpen(),
	}
}
