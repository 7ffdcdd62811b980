package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore guarda archivos subidos en una carpeta del disco y los expone
// bajo un prefijo público (servido como estático por el servidor HTTP).
// Implementa el puerto usecase.FileStore.
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore crea el store y asegura que la carpeta exista.
func NewLocalStore(dir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de uploads: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

// Save persiste el contenido con un nombre aleatorio (se conserva la
// extensión original) y devuelve la URL pública del archivo.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return s.publicURL + "/" + name, nil
}
