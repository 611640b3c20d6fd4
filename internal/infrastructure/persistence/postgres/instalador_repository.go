package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	"github.com/rafabene/instaladores-backend/internal/domain/repositories"
)

// InstaladorRepository implementa repositories.InstaladorRepository
type InstaladorRepository struct {
	db *gorm.DB
}

// NewInstaladorRepository cria um novo InstaladorRepository
func NewInstaladorRepository(db *gorm.DB) repositories.InstaladorRepository {
	return &InstaladorRepository{db: db}
}

func (r *InstaladorRepository) Crear(ctx context.Context, instalador *entities.Instalador) error {
	model := instaladorToModel(instalador)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	instalador.ID = model.ID
	instalador.CreatedAt = time.Unix(model.CreatedAt, 0)
	instalador.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *InstaladorRepository) BuscarPorID(ctx context.Context, id string) (*entities.Instalador, error) {
	var model InstaladorModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Preload("Aplicativo").
		Preload("Usuario").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return instaladorToEntity(&model), nil
}

func (r *InstaladorRepository) Listar(ctx context.Context) ([]*entities.Instalador, error) {
	var models []*InstaladorModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Preload("Aplicativo").
		Preload("Usuario").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	instaladores := make([]*entities.Instalador, 0, len(models))
	for _, model := range models {
		instaladores = append(instaladores, instaladorToEntity(model))
	}
	return instaladores, nil
}

func (r *InstaladorRepository) Actualizar(ctx context.Context, instalador *entities.Instalador) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&InstaladorModel{}).
		Where("id = ?", instalador.ID).
		Updates(map[string]interface{}{
			"version":       instalador.Version,
			"estado":        instalador.Estado,
			"observaciones": instalador.Observaciones,
		}).Error
}

func (r *InstaladorRepository) Eliminar(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&InstaladorModel{}).Error
}

func (r *InstaladorRepository) EliminarPorAplicativo(ctx context.Context, aplicativoID string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("aplicativo_id = ?", aplicativoID).Delete(&InstaladorModel{}).Error
}

// Conversores compartilhados com o repositório de aplicativos
func instaladorToModel(instalador *entities.Instalador) *InstaladorModel {
	return &InstaladorModel{
		ID:            instalador.ID,
		Version:       instalador.Version,
		ArchivoURL:    instalador.ArchivoURL,
		NombreArchivo: instalador.NombreArchivo,
		Estado:        instalador.Estado,
		Observaciones: instalador.Observaciones,
		FechaCarga:    instalador.FechaCarga.Unix(),
		AplicativoID:  instalador.AplicativoID,
		UsuarioID:     instalador.UsuarioID,
	}
}

func instaladorToEntity(model *InstaladorModel) *entities.Instalador {
	instalador := &entities.Instalador{
		ID:            model.ID,
		Version:       model.Version,
		ArchivoURL:    model.ArchivoURL,
		NombreArchivo: model.NombreArchivo,
		Estado:        model.Estado,
		Observaciones: model.Observaciones,
		FechaCarga:    time.Unix(model.FechaCarga, 0),
		AplicativoID:  model.AplicativoID,
		UsuarioID:     model.UsuarioID,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}

	if model.Aplicativo != nil {
		instalador.Aplicativo = &entities.Aplicativo{
			ID:            model.Aplicativo.ID,
			Nombre:        model.Aplicativo.Nombre,
			VersionActual: model.Aplicativo.VersionActual,
		}
	}

	if model.Usuario != nil {
		instalador.Usuario = usuarioToEntity(model.Usuario)
	}

	return instalador
}
