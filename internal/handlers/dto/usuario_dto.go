package dto

import (
	"time"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
)

// RegistrarRequest representa a requisição de registro de usuário
type RegistrarRequest struct {
	Nombre   string `json:"nombre" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Rol      string `json:"rol" binding:"omitempty,max=50"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse devolve o token de sessão emitido
type LoginResponse struct {
	Mensaje string `json:"mensaje"`
	Token   string `json:"token"`
}

// UsuarioResponse representa a resposta de um usuário (campos públicos)
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUsuarioResponse converte uma entidade Usuario para UsuarioResponse
func ToUsuarioResponse(usuario *entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:        usuario.ID,
		Nombre:    usuario.Nombre,
		Email:     usuario.Email.String(),
		Rol:       string(usuario.Rol),
		CreatedAt: usuario.CreatedAt,
	}
}
