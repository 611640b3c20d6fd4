package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	"github.com/rafabene/instaladores-backend/internal/domain/repositories"
	"github.com/rafabene/instaladores-backend/internal/domain/valueobjects"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Crear(ctx context.Context, usuario *entities.Usuario) error {
	model := usuarioToModel(usuario)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	usuario.ID = model.ID
	usuario.CreatedAt = time.Unix(model.CreatedAt, 0)
	usuario.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UsuarioRepository) BuscarPorID(ctx context.Context, id string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return usuarioToEntity(&model), nil
}

func (r *UsuarioRepository) BuscarPorEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return usuarioToEntity(&model), nil
}

// Conversores
func usuarioToModel(usuario *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		ID:           usuario.ID,
		Nombre:       usuario.Nombre,
		Email:        usuario.Email.String(),
		PasswordHash: usuario.PasswordHash,
		Rol:          string(usuario.Rol),
	}
}

func usuarioToEntity(model *UsuarioModel) *entities.Usuario {
	// O email já foi validado na escrita; aqui o valor vem direto do banco
	email, _ := valueobjects.NewEmail(model.Email)

	return &entities.Usuario{
		ID:           model.ID,
		Nombre:       model.Nombre,
		Email:        email,
		PasswordHash: model.PasswordHash,
		Rol:          entities.Rol(model.Rol),
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}
