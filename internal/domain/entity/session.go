package entity

import "encoding/json"

// Session identidade autenticada do usuário atual, espelhada no armazenamento local.
// Invariante: ou não há sessão, ou Token, Role e User estão todos presentes;
// sessões parciais não são estados válidos.
type Session struct {
	Token string
	Role  Role
	User  json.RawMessage // demais campos do perfil, repassados sem interpretação
}
