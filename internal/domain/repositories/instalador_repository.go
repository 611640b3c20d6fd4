package repositories

import (
	"context"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
)

// InstaladorRepository define a interface para persistência de instaladores
type InstaladorRepository interface {
	Crear(ctx context.Context, instalador *entities.Instalador) error

	BuscarPorID(ctx context.Context, id string) (*entities.Instalador, error)

	// Listar retorna os instaladores com aplicativo (id, nombre,
	// version_actual) e usuário (id, nombre, email) aninhados,
	// ordenados do mais recente para o mais antigo
	Listar(ctx context.Context) ([]*entities.Instalador, error)

	Actualizar(ctx context.Context, instalador *entities.Instalador) error

	Eliminar(ctx context.Context, id string) error

	// EliminarPorAplicativo remove todos os registros de instaladores de um
	// aplicativo (usado na cascata transacional de exclusão)
	EliminarPorAplicativo(ctx context.Context, aplicativoID string) error
}
