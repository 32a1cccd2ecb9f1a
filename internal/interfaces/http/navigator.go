package http

import (
	"sync"

	"github.com/canek/storefront/internal/application/session"
	"github.com/canek/storefront/pkg/logger"
)

// Navigator registra a rota corrente do storefront. O Store de sessão o aciona
// nos redirecionamentos pós-login/logout; GET /api/session expõe a rota para o
// consumidor seguir o destino.
type Navigator struct {
	mu    sync.Mutex
	route string
	log   *logger.Logger
}

// NewNavigator começa na home.
func NewNavigator(log *logger.Logger) *Navigator {
	return &Navigator{route: session.RouteHome, log: log}
}

// NavigateTo troca a rota corrente.
func (n *Navigator) NavigateTo(route string) {
	n.mu.Lock()
	n.route = route
	n.mu.Unlock()
	n.log.Debug().Str("rota", route).Msg("navegação")
}

// Current rota corrente.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}
