package entities

import (
	"errors"
	"time"
)

// Instalador representa um artefato binário enviado para um aplicativo
type Instalador struct {
	ID      string
	Version string
	// ArchivoURL é o caminho relativo do binário no storage local.
	// O arquivo e o registro são eliminados juntos, nunca órfãos.
	ArchivoURL string
	// NombreArchivo guarda o nome original do upload apenas como metadado;
	// nunca participa do caminho em disco
	NombreArchivo string
	Estado        *string
	Observaciones *string
	FechaCarga    time.Time
	AplicativoID  string
	// UsuarioID fica nulo quando o usuário que fez o upload é removido
	UsuarioID *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Aplicativo *Aplicativo
	Usuario    *Usuario
}

// Validate valida regras de negócio da entidade Instalador
func (i *Instalador) Validate() error {
	if i.Version == "" {
		return errors.New("version is required")
	}

	if i.ArchivoURL == "" {
		return errors.New("archivo_url is required")
	}

	if i.AplicativoID == "" {
		return errors.New("aplicativoId is required")
	}

	return nil
}
