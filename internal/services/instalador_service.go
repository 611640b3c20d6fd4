package services

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	"github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
	"github.com/rafabene/instaladores-backend/internal/domain/repositories"
)

// InstaladorService contém a lógica do fluxo de upload, download e
// ciclo de vida de instaladores
type InstaladorService struct {
	instaladorRepo repositories.InstaladorRepository
	aplicativoRepo repositories.AplicativoRepository
	storage        ports.ArchivoStorage
	eventos        ports.EventPublisher
	logger         ports.Logger
}

// NewInstaladorService cria um novo InstaladorService
func NewInstaladorService(
	instaladorRepo repositories.InstaladorRepository,
	aplicativoRepo repositories.AplicativoRepository,
	storage ports.ArchivoStorage,
	eventos ports.EventPublisher,
	logger ports.Logger,
) *InstaladorService {
	return &InstaladorService{
		instaladorRepo: instaladorRepo,
		aplicativoRepo: aplicativoRepo,
		storage:        storage,
		eventos:        eventos,
		logger:         logger,
	}
}

// Listar retorna os instaladores com aplicativo e usuário aninhados,
// mais recentes primeiro
func (s *InstaladorService) Listar(ctx context.Context) ([]*entities.Instalador, error) {
	return s.instaladorRepo.Listar(ctx)
}

// SubirInput representa os dados do upload de um instalador
type SubirInput struct {
	AplicativoID  string
	Version       string
	Estado        *string
	Observaciones *string
	// UsuarioID é a identidade autenticada do chamador
	UsuarioID     string
	NombreArchivo string
	Contenido     io.Reader
}

// Subir grava o binário e cria o registro do instalador. As validações
// correm em ordem fixa e qualquer falha depois da gravação elimina o
// arquivo antes de retornar. No sucesso a version_actual do aplicativo
// é sobrescrita com a versão enviada, sem comparação de ordem.
func (s *InstaladorService) Subir(ctx context.Context, input SubirInput) (*entities.Instalador, error) {
	if input.NombreArchivo == "" || input.Contenido == nil {
		return nil, errors.ErrArchivoRequerido
	}

	// Guardar valida a extensão antes de escrever
	ruta, err := s.storage.Guardar(ctx, input.NombreArchivo, input.Contenido)
	if err != nil {
		return nil, err
	}

	limpiar := func() {
		if err := s.storage.Eliminar(ruta); err != nil {
			s.logger.Warn("no se pudo limpiar el archivo subido", "ruta", ruta, "error", err)
		}
	}

	if input.AplicativoID == "" {
		limpiar()
		return nil, errors.ErrAplicativoRequerido
	}

	if input.Version == "" {
		limpiar()
		return nil, errors.ErrVersionRequerida
	}

	aplicativo, err := s.aplicativoRepo.BuscarPorID(ctx, input.AplicativoID)
	if err != nil {
		limpiar()
		return nil, err
	}
	if aplicativo == nil {
		limpiar()
		return nil, errors.ErrAplicativoNoEncontrado
	}

	if input.UsuarioID == "" {
		limpiar()
		return nil, errors.ErrNoAutenticado
	}

	usuarioID := input.UsuarioID
	instalador := &entities.Instalador{
		Version:       input.Version,
		ArchivoURL:    ruta,
		NombreArchivo: input.NombreArchivo,
		Estado:        input.Estado,
		Observaciones: input.Observaciones,
		FechaCarga:    time.Now(),
		AplicativoID:  input.AplicativoID,
		UsuarioID:     &usuarioID,
	}

	if err := s.instaladorRepo.Crear(ctx, instalador); err != nil {
		limpiar()
		return nil, err
	}

	if err := s.aplicativoRepo.ActualizarVersionActual(ctx, input.AplicativoID, input.Version); err != nil {
		return nil, err
	}

	s.logger.Info("instalador subido",
		"id", instalador.ID,
		"aplicativo", input.AplicativoID,
		"version", input.Version,
	)

	s.eventos.Publicar(ports.Evento{
		Tipo:         ports.EventoInstaladorSubido,
		InstaladorID: instalador.ID,
		AplicativoID: input.AplicativoID,
		Version:      input.Version,
		Fecha:        instalador.FechaCarga,
	})

	return instalador, nil
}

// Descargar resolve o caminho físico do binário e o nome de download.
// O nome de download vem do metadado de nome original, reduzido ao
// nome base para nunca carregar componentes de caminho.
func (s *InstaladorService) Descargar(ctx context.Context, id string) (string, string, error) {
	instalador, err := s.instaladorRepo.BuscarPorID(ctx, id)
	if err != nil {
		return "", "", err
	}
	if instalador == nil {
		return "", "", errors.ErrInstaladorNoEncontrado
	}

	ruta, err := s.storage.RutaAbsoluta(instalador.ArchivoURL)
	if err != nil {
		return "", "", err
	}

	nombre := instalador.NombreArchivo
	if nombre == "" {
		nombre = instalador.ArchivoURL
	}
	nombre = filepath.Base(filepath.FromSlash(nombre))

	return ruta, nombre, nil
}

// ActualizarInstaladorInput representa uma atualização parcial de instalador
type ActualizarInstaladorInput struct {
	Version       *string
	Estado        *string
	Observaciones *string
}

// Actualizar muta version/estado/observaciones do registro. A version_actual
// do aplicativo pai não é tocada: só o upload a sobrescreve.
func (s *InstaladorService) Actualizar(ctx context.Context, id string, input ActualizarInstaladorInput) (*entities.Instalador, error) {
	instalador, err := s.instaladorRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if instalador == nil {
		return nil, errors.ErrInstaladorNoEncontrado
	}

	if input.Version != nil {
		instalador.Version = *input.Version
	}
	if input.Estado != nil {
		instalador.Estado = input.Estado
	}
	if input.Observaciones != nil {
		instalador.Observaciones = input.Observaciones
	}

	if err := instalador.Validate(); err != nil {
		return nil, err
	}

	if err := s.instaladorRepo.Actualizar(ctx, instalador); err != nil {
		return nil, err
	}

	return instalador, nil
}

// Eliminar remove o arquivo físico (melhor esforço) e depois o registro.
// Um arquivo já ausente em disco não impede a exclusão do registro.
func (s *InstaladorService) Eliminar(ctx context.Context, id string) error {
	instalador, err := s.instaladorRepo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if instalador == nil {
		return errors.ErrInstaladorNoEncontrado
	}

	if err := s.storage.Eliminar(instalador.ArchivoURL); err != nil {
		s.logger.Warn("no se pudo eliminar el archivo", "ruta", instalador.ArchivoURL, "error", err)
	}

	if err := s.instaladorRepo.Eliminar(ctx, id); err != nil {
		return err
	}

	s.eventos.Publicar(ports.Evento{
		Tipo:         ports.EventoInstaladorEliminado,
		InstaladorID: instalador.ID,
		AplicativoID: instalador.AplicativoID,
		Version:      instalador.Version,
		Fecha:        time.Now(),
	})

	return nil
}
