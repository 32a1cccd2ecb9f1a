package dto

import (
	"github.com/shopspring/decimal"

	"github.com/canek/storefront/internal/domain/entity"
)

// ProductRequest criação/atualização de produto no backoffice. Os campos seguem
// o contrato JSON do backend, repassados sem tradução.
type ProductRequest struct {
	Nome      string                `json:"nome"`
	Preco     decimal.Decimal       `json:"preco"`
	Estoque   int                   `json:"estoque"`
	Descricao string                `json:"descricao"`
	Avaliacao float64               `json:"avaliacao,omitempty"`
	Imagens   []entity.ProductImage `json:"imagens"`
}

// UploadResponse resposta do upload de imagem do backend.
type UploadResponse struct {
	URL string `json:"url"`
}
