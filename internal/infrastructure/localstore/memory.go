package localstore

import (
	"sync"

	"github.com/canek/storefront/internal/domain/storage"
)

// Memory implementação em memória de storage.KeyValue, para testes e execução
// efêmera (STORE_DIR vazio).
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory cria o store vazio.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get devolve o valor da chave ou storage.ErrNotFound.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set grava o valor da chave.
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Delete remove a chave; chave ausente não é erro.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Has informa se a chave existe (auxiliar de testes).
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}
