package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrBackendUnreachable = errors.New("não foi possível conectar ao servidor")
	ErrInvalidCEP         = errors.New("CEP inválido: informe 8 dígitos")
)
