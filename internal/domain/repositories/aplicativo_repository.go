package repositories

import (
	"context"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
)

// AplicativoRepository define a interface para persistência de aplicativos
type AplicativoRepository interface {
	Crear(ctx context.Context, aplicativo *entities.Aplicativo) error

	// BuscarPorID retorna o aplicativo com os instaladores aninhados
	// (cada um com os campos públicos do usuário que fez o upload)
	BuscarPorID(ctx context.Context, id string) (*entities.Aplicativo, error)

	BuscarPorNombre(ctx context.Context, nombre string) (*entities.Aplicativo, error)

	// Listar retorna os aplicativos com instaladores aninhados,
	// ordenados do mais recente para o mais antigo
	Listar(ctx context.Context) ([]*entities.Aplicativo, error)

	Actualizar(ctx context.Context, aplicativo *entities.Aplicativo) error

	Eliminar(ctx context.Context, id string) error

	// ActualizarVersionActual sobrescreve version_actual (last-write-wins)
	ActualizarVersionActual(ctx context.Context, id, version string) error
}
