package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/canek/storefront/internal/domain/storage"
)

// FileStore armazenamento chave-valor com um arquivo por chave, sob um diretório
// da aplicação. As chaves são nomes controlados pela própria aplicação
// ("cart", "userToken", "userData"), nunca entrada de usuário.
type FileStore struct {
	dir string
}

// NewFileStore cria o diretório se necessário e devolve o store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de armazenamento: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get lê o valor da chave; chave ausente devolve storage.ErrNotFound.
func (f *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set grava o valor via arquivo temporário + rename, para que leitores nunca
// observem uma escrita pela metade.
func (f *FileStore) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}

// Delete remove a chave; remover chave ausente não é erro.
func (f *FileStore) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
