package entity

import "github.com/shopspring/decimal"

// ProductImage imagem de um produto; Principal marca a imagem de destaque.
type ProductImage struct {
	ID        int64  `json:"id,omitempty"`
	Path      string `json:"caminhoImagem"`
	Principal bool   `json:"principal"`
}

// Product produto do catálogo, conforme o contrato JSON do backend.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int             `json:"estoque"`
	Description string          `json:"descricao"`
	Rating      float64         `json:"avaliacao"`
	Active      bool            `json:"status"`
	Images      []ProductImage  `json:"imagens"`
}

// PrincipalImagePath devolve o caminho da imagem principal; na ausência de uma
// marcada como principal, a primeira; sem imagens, string vazia.
func (p Product) PrincipalImagePath() string {
	for _, img := range p.Images {
		if img.Principal {
			return img.Path
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].Path
	}
	return ""
}

// ShippingOption opção de frete devolvida pelo cálculo de frete do backend.
type ShippingOption struct {
	Carrier string          `json:"transportadora"`
	ETA     string          `json:"prazoEstimado"`
	Cost    decimal.Decimal `json:"valor"`
}

// AdminUser usuário do backoffice, gerenciado pelo CRUD de administradores.
type AdminUser struct {
	ID       int64  `json:"id"`
	FullName string `json:"nomeCompleto"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Cargo    string `json:"cargo"` // ADMIN ou ESTOQUISTA, texto do backend
	Active   bool   `json:"status"`
}
