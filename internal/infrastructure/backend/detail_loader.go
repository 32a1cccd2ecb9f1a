package backend

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/canek/storefront/internal/domain/entity"
	"github.com/canek/storefront/pkg/logger"
)

// DetailLoader carrega o detalhe de produto com token de geração: cada busca
// recebe um id monotônico e apenas a resposta da geração mais recente é
// aplicada. Navegar rápido entre produtos dispara buscas que não são
// canceladas; sem o token, uma resposta atrasada de um produto já abandonado
// sobrescreveria o detalhe corrente.
type DetailLoader struct {
	client *Client
	log    *logger.Logger
	gen    atomic.Int64

	mu      sync.Mutex
	current *entity.Product
}

// NewDetailLoader constrói o loader sobre o cliente do backend.
func NewDetailLoader(client *Client, log *logger.Logger) *DetailLoader {
	return &DetailLoader{client: client, log: log}
}

// Load busca o produto e aplica a resposta somente se nenhuma busca mais nova
// começou nesse meio-tempo. applied=false sinaliza resposta obsoleta,
// descartada sem erro.
func (l *DetailLoader) Load(ctx context.Context, id int64) (p *entity.Product, applied bool, err error) {
	gen := l.gen.Add(1)

	p, err = l.client.GetProduct(ctx, id)

	if gen != l.gen.Load() {
		l.log.Debug().Int64("id", id).Int64("geracao", gen).
			Msg("resposta de detalhe obsoleta descartada")
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}

	l.mu.Lock()
	l.current = p
	l.mu.Unlock()
	return p, true, nil
}

// Current último detalhe de produto aplicado, ou nil.
func (l *DetailLoader) Current() *entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}
