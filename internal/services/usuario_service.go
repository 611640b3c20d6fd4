package services

import (
	"context"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	"github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
	"github.com/rafabene/instaladores-backend/internal/domain/repositories"
	"github.com/rafabene/instaladores-backend/internal/domain/valueobjects"
)

// UsuarioService contém a lógica de registro, login e perfil
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
	hasher      ports.PasswordHasher
	tokens      ports.TokenService
	logger      ports.Logger
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// RegistrarInput representa os dados para registrar um usuário
type RegistrarInput struct {
	Nombre   string
	Email    string
	Password string
	// Rol vem do chamador sem restrição; vazio vira "usuario"
	Rol string
}

// Registrar cria um novo usuário guardando apenas o hash da senha
func (s *UsuarioService) Registrar(ctx context.Context, input RegistrarInput) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existente, err := s.usuarioRepo.BuscarPorEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, errors.ErrEmailYaRegistrado
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	rol := entities.Rol(input.Rol)
	if rol == "" {
		rol = entities.RolPorDefecto
	}

	usuario := &entities.Usuario{
		Nombre:       input.Nombre,
		Email:        email,
		PasswordHash: hash,
		Rol:          rol,
	}

	if err := usuario.Validate(); err != nil {
		return nil, err
	}

	if err := s.usuarioRepo.Crear(ctx, usuario); err != nil {
		return nil, err
	}

	s.logger.Info("usuario registrado", "email", email.String(), "rol", string(rol))
	return usuario, nil
}

// Login verifica as credenciais e emite um token de sessão.
// Email desconhecido e senha errada produzem o mesmo erro.
func (s *UsuarioService) Login(ctx context.Context, email, password string) (string, error) {
	usuario, err := s.usuarioRepo.BuscarPorEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if usuario == nil {
		return "", errors.ErrCredencialesInvalidas
	}

	if !s.hasher.Verificar(password, usuario.PasswordHash) {
		return "", errors.ErrCredencialesInvalidas
	}

	return s.tokens.Generar(usuario)
}

// Perfil busca os dados públicos do usuário autenticado
func (s *UsuarioService) Perfil(ctx context.Context, id string) (*entities.Usuario, error) {
	usuario, err := s.usuarioRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrUsuarioNoEncontrado
	}
	return usuario, nil
}
