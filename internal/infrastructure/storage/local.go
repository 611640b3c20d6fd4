package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/config"
)

// subdiretório dos binários dentro do diretório base de uploads
const subdirInstaladores = "instaladores"

var extensionesPermitidas = map[string]bool{
	".exe": true,
	".msi": true,
}

// LocalStorage implementa ports.ArchivoStorage em disco local.
// O nome armazenado é uma chave opaca (uuid) mais a extensão validada;
// o nome original do upload nunca entra no caminho físico.
type LocalStorage struct {
	baseDir string
	logger  ports.Logger
}

// NewLocalStorage cria o adaptador e o diretório de destino (idempotente)
func NewLocalStorage(cfg *config.StorageConfig, logger ports.Logger) (*LocalStorage, error) {
	dir := filepath.Join(cfg.Dir, subdirInstaladores)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &LocalStorage{
		baseDir: cfg.Dir,
		logger:  logger,
	}, nil
}

func (s *LocalStorage) Guardar(ctx context.Context, nombreOriginal string, contenido io.Reader) (string, error) {
	// A extensão é validada antes de qualquer escrita
	ext := strings.ToLower(filepath.Ext(nombreOriginal))
	if !extensionesPermitidas[ext] {
		return "", domainerrors.ErrTipoArchivoInvalido
	}

	nombre := uuid.NewString() + ext
	ruta := path.Join(subdirInstaladores, nombre)
	destino := filepath.Join(s.baseDir, subdirInstaladores, nombre)

	archivo, err := os.Create(destino)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(archivo, contenido); err != nil {
		archivo.Close()
		// escrita parcial não pode ficar em disco
		if rmErr := os.Remove(destino); rmErr != nil {
			s.logger.Warn("failed to remove partial upload", "ruta", destino, "error", rmErr)
		}
		return "", err
	}

	if err := archivo.Close(); err != nil {
		return "", err
	}

	s.logger.Debug("archivo almacenado", "ruta", ruta, "nombre_original", nombreOriginal)
	return ruta, nil
}

func (s *LocalStorage) Eliminar(ruta string) error {
	err := os.Remove(s.resolver(ruta))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) RutaAbsoluta(ruta string) (string, error) {
	abs := s.resolver(ruta)
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domainerrors.ErrArchivoNoEncontrado
		}
		return "", err
	}
	return abs, nil
}

func (s *LocalStorage) resolver(ruta string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(ruta))
}
