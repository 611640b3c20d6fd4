package dto

import (
	"time"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
)

// CrearAplicativoRequest representa a requisição para criar um aplicativo
type CrearAplicativoRequest struct {
	Nombre        string  `json:"nombre" binding:"required,min=1,max=255"`
	Descripcion   *string `json:"descripcion" binding:"omitempty,max=2000"`
	Observaciones *string `json:"observaciones" binding:"omitempty,max=2000"`
	VersionActual *string `json:"version_actual" binding:"omitempty,max=100"`
}

// ActualizarAplicativoRequest representa uma atualização parcial
type ActualizarAplicativoRequest struct {
	Nombre        *string `json:"nombre" binding:"omitempty,min=1,max=255"`
	Descripcion   *string `json:"descripcion" binding:"omitempty,max=2000"`
	Observaciones *string `json:"observaciones" binding:"omitempty,max=2000"`
	VersionActual *string `json:"version_actual" binding:"omitempty,max=100"`
}

// AplicativoResponse representa a resposta de um aplicativo
type AplicativoResponse struct {
	ID            string               `json:"id"`
	Nombre        string               `json:"nombre"`
	Descripcion   *string              `json:"descripcion,omitempty"`
	Observaciones *string              `json:"observaciones,omitempty"`
	VersionActual *string              `json:"version_actual,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	Instaladores  []InstaladorResponse `json:"instaladores,omitempty"`
}

// MensajeResponse encapsula uma mensagem traduzida com o recurso afetado
type MensajeResponse struct {
	Mensaje    string      `json:"mensaje"`
	Aplicativo interface{} `json:"aplicativo,omitempty"`
	Instalador interface{} `json:"instalador,omitempty"`
	Usuario    interface{} `json:"usuario,omitempty"`
}

// ToAplicativoResponse converte uma entidade Aplicativo para AplicativoResponse
func ToAplicativoResponse(aplicativo *entities.Aplicativo) AplicativoResponse {
	response := AplicativoResponse{
		ID:            aplicativo.ID,
		Nombre:        aplicativo.Nombre,
		Descripcion:   aplicativo.Descripcion,
		Observaciones: aplicativo.Observaciones,
		VersionActual: aplicativo.VersionActual,
		CreatedAt:     aplicativo.CreatedAt,
		UpdatedAt:     aplicativo.UpdatedAt,
	}

	for _, instalador := range aplicativo.Instaladores {
		response.Instaladores = append(response.Instaladores, ToInstaladorResponse(instalador))
	}

	return response
}

// ToAplicativoResponses converte uma lista de entidades Aplicativo
func ToAplicativoResponses(aplicativos []*entities.Aplicativo) []AplicativoResponse {
	responses := make([]AplicativoResponse, len(aplicativos))
	for i, aplicativo := range aplicativos {
		responses[i] = ToAplicativoResponse(aplicativo)
	}
	return responses
}
