package entities

import (
	"errors"
	"time"
)

// Aplicativo representa um produto do catálogo, dono de um histórico de
// instaladores versionados
type Aplicativo struct {
	ID            string
	Nombre        string
	Descripcion   *string
	Observaciones *string
	// VersionActual é escrita apenas pelo upload de instaladores
	// (last-write-wins, sem comparação semântica de versões)
	VersionActual *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Instaladores []*Instalador
}

// Validate valida regras de negócio da entidade Aplicativo
func (a *Aplicativo) Validate() error {
	if a.Nombre == "" {
		return errors.New("nombre is required")
	}
	return nil
}
