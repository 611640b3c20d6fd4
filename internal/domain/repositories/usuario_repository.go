package repositories

import (
	"context"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários
type UsuarioRepository interface {
	Crear(ctx context.Context, usuario *entities.Usuario) error
	BuscarPorID(ctx context.Context, id string) (*entities.Usuario, error)
	BuscarPorEmail(ctx context.Context, email string) (*entities.Usuario, error)
}
