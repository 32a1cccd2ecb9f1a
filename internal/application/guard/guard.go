package guard

import "github.com/canek/storefront/internal/domain/entity"

// Decision resultado da avaliação de uma navegação protegida.
type Decision int

const (
	// Pending sessão ainda reidratando: adiar a decisão, nunca redirecionar.
	Pending Decision = iota
	// DeniedUnauthenticated sessão carregada e sem usuário: redirecionar à home.
	DeniedUnauthenticated
	// DeniedWrongRole usuário presente mas sem o papel exigido: redirecionar à home.
	DeniedWrongRole
	// Allowed requisito satisfeito: renderizar o conteúdo protegido.
	Allowed
)

// String nome da decisão, para logs.
func (d Decision) String() string {
	switch d {
	case Pending:
		return "PENDING"
	case DeniedUnauthenticated:
		return "DENIED_UNAUTHENTICATED"
	case DeniedWrongRole:
		return "DENIED_WRONG_ROLE"
	case Allowed:
		return "ALLOWED"
	default:
		return "UNKNOWN"
	}
}

// Requirement nível de acesso exigido por uma rota.
type Requirement int

const (
	// RequireAuthenticated qualquer usuário autenticado.
	RequireAuthenticated Requirement = iota
	// RequireBackoffice papel ADMIN ou ESTOQUISTA.
	RequireBackoffice
)

// SessionState visão mínima da sessão necessária para decidir uma navegação.
type SessionState interface {
	Loading() bool
	IsAuthenticated() bool
	Role() entity.Role
}

// Evaluate decide uma navegação protegida, reavaliada a cada entrada de rota
// (nunca cacheada). A checagem de loading vem antes de qualquer outra: decidir
// durante a reidratação redirecionaria indevidamente usuários autenticados a
// cada recarga de página.
func Evaluate(s SessionState, req Requirement) Decision {
	if s.Loading() {
		return Pending
	}
	if !s.IsAuthenticated() {
		return DeniedUnauthenticated
	}
	if req == RequireBackoffice && !s.Role().Backoffice() {
		return DeniedWrongRole
	}
	return Allowed
}
