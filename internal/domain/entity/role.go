package entity

// Role papel do usuário autenticado, normalizado na fronteira da sessão.
// O backend devolve o papel como texto livre sob dois nomes de campo distintos
// (cargo para contas do backoffice, tipoUsuario para clientes); aqui vira um
// enum fechado para que o resto da aplicação nunca dependa das strings brutas.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
	RoleStocker  Role = "STOCKER"
	RoleUnknown  Role = "UNKNOWN"
)

// NormalizeRole converte o valor bruto do backend no enum fechado.
// ok=false sinaliza valor não reconhecido: deve ser logado, nunca mascarado,
// para não esconder mudanças de contrato do backend.
func NormalizeRole(raw string) (Role, bool) {
	switch raw {
	case "ADMIN":
		return RoleAdmin, true
	case "ESTOQUISTA":
		return RoleStocker, true
	case "cliente":
		return RoleCustomer, true
	default:
		return RoleUnknown, false
	}
}

// Backoffice indica se o papel dá acesso às rotas administrativas.
func (r Role) Backoffice() bool {
	return r == RoleAdmin || r == RoleStocker
}
