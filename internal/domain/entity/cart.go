package entity

import "github.com/shopspring/decimal"

// LineItem uma entrada do carrinho, chaveada pelo id do produto (único, sem
// duplicatas). Quantity é sempre >= 1.
type LineItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// CartProduct subconjunto de um produto suficiente para virar item de carrinho.
type CartProduct struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	Image     string
}
