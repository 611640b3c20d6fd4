package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	"github.com/rafabene/instaladores-backend/internal/domain/repositories"
)

// AplicativoRepository implementa repositories.AplicativoRepository
type AplicativoRepository struct {
	db *gorm.DB
}

// NewAplicativoRepository cria um novo AplicativoRepository
func NewAplicativoRepository(db *gorm.DB) repositories.AplicativoRepository {
	return &AplicativoRepository{db: db}
}

func (r *AplicativoRepository) Crear(ctx context.Context, aplicativo *entities.Aplicativo) error {
	model := r.toModel(aplicativo)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	aplicativo.ID = model.ID
	aplicativo.CreatedAt = time.Unix(model.CreatedAt, 0)
	aplicativo.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *AplicativoRepository) BuscarPorID(ctx context.Context, id string) (*entities.Aplicativo, error) {
	var model AplicativoModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Preload("Instaladores", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Instaladores.Usuario").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AplicativoRepository) BuscarPorNombre(ctx context.Context, nombre string) (*entities.Aplicativo, error) {
	var model AplicativoModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("nombre = ?", nombre).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AplicativoRepository) Listar(ctx context.Context) ([]*entities.Aplicativo, error) {
	var models []*AplicativoModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Preload("Instaladores", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Instaladores.Usuario").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	aplicativos := make([]*entities.Aplicativo, 0, len(models))
	for _, model := range models {
		aplicativos = append(aplicativos, r.toEntity(model))
	}
	return aplicativos, nil
}

func (r *AplicativoRepository) Actualizar(ctx context.Context, aplicativo *entities.Aplicativo) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&AplicativoModel{}).
		Where("id = ?", aplicativo.ID).
		Updates(map[string]interface{}{
			"nombre":         aplicativo.Nombre,
			"descripcion":    aplicativo.Descripcion,
			"observaciones":  aplicativo.Observaciones,
			"version_actual": aplicativo.VersionActual,
		}).Error
}

func (r *AplicativoRepository) Eliminar(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&AplicativoModel{}).Error
}

func (r *AplicativoRepository) ActualizarVersionActual(ctx context.Context, id, version string) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&AplicativoModel{}).
		Where("id = ?", id).
		Update("version_actual", version).Error
}

// Conversores
func (r *AplicativoRepository) toModel(aplicativo *entities.Aplicativo) *AplicativoModel {
	return &AplicativoModel{
		ID:            aplicativo.ID,
		Nombre:        aplicativo.Nombre,
		Descripcion:   aplicativo.Descripcion,
		Observaciones: aplicativo.Observaciones,
		VersionActual: aplicativo.VersionActual,
	}
}

func (r *AplicativoRepository) toEntity(model *AplicativoModel) *entities.Aplicativo {
	aplicativo := &entities.Aplicativo{
		ID:            model.ID,
		Nombre:        model.Nombre,
		Descripcion:   model.Descripcion,
		Observaciones: model.Observaciones,
		VersionActual: model.VersionActual,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}

	for i := range model.Instaladores {
		aplicativo.Instaladores = append(aplicativo.Instaladores, instaladorToEntity(&model.Instaladores[i]))
	}

	return aplicativo
}
