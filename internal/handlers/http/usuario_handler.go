package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/handlers/dto"
	"github.com/rafabene/instaladores-backend/internal/handlers/middleware"
	"github.com/rafabene/instaladores-backend/internal/services"
)

// UsuarioHandler lida com requisições HTTP de usuários e autenticação
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
	}
}

// Registrar godoc
// @Summary  Registrar un nuevo usuario
// @Tags     usuarios
// @Accept   json
// @Produce  json
// @Param    usuario body dto.RegistrarRequest true "Datos del usuario"
// @Success  201 {object} dto.MensajeResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /usuarios/register [post]
func (h *UsuarioHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtraerErroresDeValidacion(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	usuario, err := h.usuarioService.Registrar(c.Request.Context(), services.RegistrarInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		Rol:      req.Rol,
	})
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MensajeResponse{
		Mensaje: dto.T(c, "mensaje.usuario_registrado"),
		Usuario: dto.ToUsuarioResponse(usuario),
	})
}

// Login godoc
// @Summary  Iniciar sesión de usuario
// @Tags     usuarios
// @Accept   json
// @Produce  json
// @Param    credenciales body dto.LoginRequest true "Credenciales"
// @Success  200 {object} dto.LoginResponse
// @Failure  401 {object} dto.ErrorResponse
// @Router   /usuarios/login [post]
func (h *UsuarioHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtraerErroresDeValidacion(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	token, err := h.usuarioService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Mensaje: dto.T(c, "mensaje.login_exitoso"),
		Token:   token,
	})
}

// Perfil godoc
// @Summary  Obtener el perfil del usuario autenticado
// @Tags     usuarios
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} dto.UsuarioResponse
// @Failure  401 {object} dto.ErrorResponse
// @Router   /usuarios/profile [get]
func (h *UsuarioHandler) Perfil(c *gin.Context) {
	identidad := middleware.IdentidadDesdeContexto(c)
	if identidad == nil {
		dto.ResponderError(c, domainerrors.ErrNoAutenticado)
		return
	}

	usuario, err := h.usuarioService.Perfil(c.Request.Context(), identidad.ID)
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}
