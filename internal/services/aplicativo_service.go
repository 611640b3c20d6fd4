package services

import (
	"context"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	"github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
	"github.com/rafabene/instaladores-backend/internal/domain/repositories"
)

// AplicativoService contém a lógica de negócio para aplicativos
type AplicativoService struct {
	aplicativoRepo repositories.AplicativoRepository
	instaladorRepo repositories.InstaladorRepository
	storage        ports.ArchivoStorage
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewAplicativoService cria um novo AplicativoService
func NewAplicativoService(
	aplicativoRepo repositories.AplicativoRepository,
	instaladorRepo repositories.InstaladorRepository,
	storage ports.ArchivoStorage,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AplicativoService {
	return &AplicativoService{
		aplicativoRepo: aplicativoRepo,
		instaladorRepo: instaladorRepo,
		storage:        storage,
		uow:            uow,
		logger:         logger,
	}
}

// Listar retorna os aplicativos com instaladores aninhados, mais recentes primeiro
func (s *AplicativoService) Listar(ctx context.Context) ([]*entities.Aplicativo, error) {
	return s.aplicativoRepo.Listar(ctx)
}

// Obtener busca um aplicativo por ID com instaladores aninhados
func (s *AplicativoService) Obtener(ctx context.Context, id string) (*entities.Aplicativo, error) {
	aplicativo, err := s.aplicativoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if aplicativo == nil {
		return nil, errors.ErrAplicativoNoEncontrado
	}
	return aplicativo, nil
}

// CrearInput representa os dados para criar um aplicativo
type CrearInput struct {
	Nombre        string
	Descripcion   *string
	Observaciones *string
	VersionActual *string
}

// Crear cria um novo aplicativo; nombre é único no catálogo
func (s *AplicativoService) Crear(ctx context.Context, input CrearInput) (*entities.Aplicativo, error) {
	existente, err := s.aplicativoRepo.BuscarPorNombre(ctx, input.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, errors.ErrNombreDuplicado
	}

	aplicativo := &entities.Aplicativo{
		Nombre:        input.Nombre,
		Descripcion:   input.Descripcion,
		Observaciones: input.Observaciones,
		VersionActual: input.VersionActual,
	}

	if err := aplicativo.Validate(); err != nil {
		return nil, err
	}

	if err := s.aplicativoRepo.Crear(ctx, aplicativo); err != nil {
		return nil, err
	}

	s.logger.Info("aplicativo creado", "id", aplicativo.ID, "nombre", aplicativo.Nombre)
	return aplicativo, nil
}

// ActualizarInput representa uma atualização parcial de aplicativo
type ActualizarInput struct {
	Nombre        *string
	Descripcion   *string
	Observaciones *string
	VersionActual *string
}

// Actualizar aplica os campos enviados sobre um aplicativo existente
func (s *AplicativoService) Actualizar(ctx context.Context, id string, input ActualizarInput) (*entities.Aplicativo, error) {
	aplicativo, err := s.aplicativoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if aplicativo == nil {
		return nil, errors.ErrAplicativoNoEncontrado
	}

	if input.Nombre != nil {
		aplicativo.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		aplicativo.Descripcion = input.Descripcion
	}
	if input.Observaciones != nil {
		aplicativo.Observaciones = input.Observaciones
	}
	if input.VersionActual != nil {
		aplicativo.VersionActual = input.VersionActual
	}

	if err := aplicativo.Validate(); err != nil {
		return nil, err
	}

	if err := s.aplicativoRepo.Actualizar(ctx, aplicativo); err != nil {
		return nil, err
	}

	return aplicativo, nil
}

// Eliminar remove o aplicativo e todos os seus instaladores.
// Os registros saem numa única transação; os arquivos físicos são removidos
// depois do commit, um a um, sem abortar nos que falharem.
func (s *AplicativoService) Eliminar(ctx context.Context, id string) error {
	aplicativo, err := s.aplicativoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if aplicativo == nil {
		return errors.ErrAplicativoNoEncontrado
	}

	rutas := make([]string, 0, len(aplicativo.Instaladores))
	for _, instalador := range aplicativo.Instaladores {
		rutas = append(rutas, instalador.ArchivoURL)
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.instaladorRepo.EliminarPorAplicativo(txCtx, id); err != nil {
			return err
		}
		return s.aplicativoRepo.Eliminar(txCtx, id)
	})
	if err != nil {
		return err
	}

	for _, ruta := range rutas {
		if err := s.storage.Eliminar(ruta); err != nil {
			s.logger.Warn("no se pudo eliminar el archivo", "ruta", ruta, "error", err)
		}
	}

	s.logger.Info("aplicativo eliminado", "id", id, "instaladores", len(rutas))
	return nil
}
