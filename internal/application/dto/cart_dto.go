package dto

import (
	"github.com/shopspring/decimal"

	"github.com/canek/storefront/internal/domain/entity"
)

// AddItemRequest adiciona um produto do catálogo ao carrinho.
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
}

// QuantityRequest nova quantidade de um item do carrinho.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SelectShippingRequest valor da opção de frete escolhida.
type SelectShippingRequest struct {
	Valor decimal.Decimal `json:"valor"`
}

// ShippingQuoteRequest CEP de destino para cálculo de frete.
type ShippingQuoteRequest struct {
	CEP string `json:"cep"`
}

// CartResponse visão completa do carrinho com os derivados recomputados.
type CartResponse struct {
	Items         []entity.LineItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	ShippingCost  decimal.Decimal   `json:"shippingCost"`
	Total         decimal.Decimal   `json:"total"`
	SidePanelOpen bool              `json:"sidePanelOpen"`
}
