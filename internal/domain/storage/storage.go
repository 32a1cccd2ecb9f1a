package storage

import "errors"

// ErrNotFound chave ausente no armazenamento.
var ErrNotFound = errors.New("chave não encontrada")

// KeyValue porta de persistência local, equivalente ao armazenamento chave-valor
// do navegador no storefront original. O carrinho e a sessão são espelhados aqui
// a cada mutação, sempre depois da atualização em memória.
type KeyValue interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
