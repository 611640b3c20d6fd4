package dto

import (
	"time"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
)

// ActualizarInstaladorRequest representa uma atualização parcial de instalador
type ActualizarInstaladorRequest struct {
	Version       *string `json:"version" binding:"omitempty,min=1,max=100"`
	Estado        *string `json:"estado" binding:"omitempty,max=100"`
	Observaciones *string `json:"observaciones" binding:"omitempty,max=2000"`
}

// AplicativoResumen são os campos públicos do aplicativo aninhado
type AplicativoResumen struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	VersionActual *string `json:"version_actual,omitempty"`
}

// UsuarioResumen são os campos públicos do usuário que fez o upload
type UsuarioResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// InstaladorResponse representa a resposta de um instalador
type InstaladorResponse struct {
	ID            string             `json:"id"`
	Version       string             `json:"version"`
	ArchivoURL    string             `json:"archivo_url"`
	NombreArchivo string             `json:"nombre_archivo,omitempty"`
	Estado        *string            `json:"estado,omitempty"`
	Observaciones *string            `json:"observaciones,omitempty"`
	FechaCarga    time.Time          `json:"fecha_carga"`
	AplicativoID  string             `json:"aplicativoId"`
	UsuarioID     *string            `json:"usuarioId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	Aplicativo    *AplicativoResumen `json:"aplicativo,omitempty"`
	Usuario       *UsuarioResumen    `json:"usuario,omitempty"`
}

// ToInstaladorResponse converte uma entidade Instalador para InstaladorResponse
func ToInstaladorResponse(instalador *entities.Instalador) InstaladorResponse {
	response := InstaladorResponse{
		ID:            instalador.ID,
		Version:       instalador.Version,
		ArchivoURL:    instalador.ArchivoURL,
		NombreArchivo: instalador.NombreArchivo,
		Estado:        instalador.Estado,
		Observaciones: instalador.Observaciones,
		FechaCarga:    instalador.FechaCarga,
		AplicativoID:  instalador.AplicativoID,
		UsuarioID:     instalador.UsuarioID,
		CreatedAt:     instalador.CreatedAt,
	}

	if instalador.Aplicativo != nil {
		response.Aplicativo = &AplicativoResumen{
			ID:            instalador.Aplicativo.ID,
			Nombre:        instalador.Aplicativo.Nombre,
			VersionActual: instalador.Aplicativo.VersionActual,
		}
	}

	if instalador.Usuario != nil {
		response.Usuario = &UsuarioResumen{
			ID:     instalador.Usuario.ID,
			Nombre: instalador.Usuario.Nombre,
			Email:  instalador.Usuario.Email.String(),
		}
	}

	return response
}

// ToInstaladorResponses converte uma lista de entidades Instalador
func ToInstaladorResponses(instaladores []*entities.Instalador) []InstaladorResponse {
	responses := make([]InstaladorResponse, len(instaladores))
	for i, instalador := range instaladores {
		responses[i] = ToInstaladorResponse(instalador)
	}
	return responses
}
