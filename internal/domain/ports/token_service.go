package ports

import "github.com/rafabene/instaladores-backend/internal/domain/entities"

// Identidad representa os claims de uma sessão autenticada
type Identidad struct {
	ID    string
	Email string
	Rol   entities.Rol
}

// TokenService define a interface para emissão e verificação de tokens de sessão
type TokenService interface {
	Generar(usuario *entities.Usuario) (string, error)
	Validar(token string) (*Identidad, error)
}

// PasswordHasher define a interface para hashing de senhas
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verificar(password, hash string) bool
}
