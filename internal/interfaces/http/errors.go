package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/domain"
	"github.com/canek/storefront/internal/infrastructure/backend"
)

// respondError traduz a taxonomia de erros para HTTP: conectividade vira 502
// com mensagem genérica; resposta não-2xx do backend repassa status e texto
// verbatim; erros de entrada viram 400.
func respondError(c *fiber.Ctx, err error) error {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, domain.ErrBackendUnreachable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "BACKEND_INACESSIVEL", Message: "Não foi possível conectar ao servidor.",
		})
	case errors.As(err, &apiErr):
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{
			Code: "BACKEND", Message: apiErr.Message,
		})
	case errors.Is(err, domain.ErrInvalidCEP), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
