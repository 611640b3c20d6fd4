package entities

import (
	"errors"
	"time"

	"github.com/rafabene/instaladores-backend/internal/domain/valueobjects"
)

// Usuario representa um usuário do sistema
type Usuario struct {
	ID           string
	Nombre       string
	Email        valueobjects.Email
	PasswordHash string
	Rol          Rol
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EsAdmin verifica se o usuário é admin
func (u *Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin
}

// Validate valida regras de negócio da entidade Usuario
func (u *Usuario) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Nombre == "" {
		return errors.New("nombre is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if u.Rol == "" {
		return errors.New("rol is required")
	}

	return nil
}
