package dto

import "encoding/json"

// LoginRequest credenciais de login (cliente ou backoffice).
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// RegisterRequest cadastro de cliente. CPF e telefone só com dígitos.
type RegisterRequest struct {
	NomeCompleto string `json:"nomeCompleto"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	Senha        string `json:"senha"`
}

// SessionResponse estado corrente da sessão, como exposto pelo gateway.
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Loading       bool            `json:"loading"`
	Role          string          `json:"role,omitempty"`
	User          json.RawMessage `json:"user,omitempty"`
	Route         string          `json:"route"`
}

// AdminUserRequest criação/atualização de usuário do backoffice.
// Em atualização, Senha vazia preserva a senha corrente.
type AdminUserRequest struct {
	NomeCompleto string `json:"nomeCompleto"`
	Email        string `json:"email"`
	CPF          string `json:"cpf"`
	Cargo        string `json:"cargo"`
	Senha        string `json:"senha,omitempty"`
}
