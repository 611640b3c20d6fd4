package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/handlers/dto"
	"github.com/rafabene/instaladores-backend/internal/handlers/middleware"
	"github.com/rafabene/instaladores-backend/internal/services"
)

// InstaladorHandler lida com requisições HTTP de instaladores
type InstaladorHandler struct {
	instaladorService *services.InstaladorService
}

// NewInstaladorHandler cria um novo InstaladorHandler
func NewInstaladorHandler(instaladorService *services.InstaladorService) *InstaladorHandler {
	return &InstaladorHandler{
		instaladorService: instaladorService,
	}
}

// Listar godoc
// @Summary  Obtener la lista de instaladores
// @Tags     instaladores
// @Produce  json
// @Success  200 {array} dto.InstaladorResponse
// @Router   /instaladores [get]
func (h *InstaladorHandler) Listar(c *gin.Context) {
	instaladores, err := h.instaladorService.Listar(c.Request.Context())
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInstaladorResponses(instaladores))
}

// Subir godoc
// @Summary  Subir un nuevo instalador
// @Tags     instaladores
// @Accept   multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param    file formData file true "Archivo del instalador (.exe o .msi)"
// @Param    aplicativoId formData string true "ID del aplicativo"
// @Param    version formData string true "Versión del instalador"
// @Param    estado formData string false "Estado del instalador"
// @Param    observaciones formData string false "Observaciones"
// @Success  201 {object} dto.MensajeResponse
// @Failure  400 {object} dto.ErrorResponse
// @Failure  401 {object} dto.ErrorResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /instaladores/upload [post]
func (h *InstaladorHandler) Subir(c *gin.Context) {
	archivo, err := c.FormFile("file")
	if err != nil {
		dto.ResponderError(c, domainerrors.ErrArchivoRequerido)
		return
	}

	contenido, err := archivo.Open()
	if err != nil {
		dto.ResponderError(c, err)
		return
	}
	defer contenido.Close()

	var usuarioID string
	if identidad := middleware.IdentidadDesdeContexto(c); identidad != nil {
		usuarioID = identidad.ID
	}

	instalador, err := h.instaladorService.Subir(c.Request.Context(), services.SubirInput{
		AplicativoID:  c.PostForm("aplicativoId"),
		Version:       c.PostForm("version"),
		Estado:        formOpcional(c, "estado"),
		Observaciones: formOpcional(c, "observaciones"),
		UsuarioID:     usuarioID,
		NombreArchivo: archivo.Filename,
		Contenido:     contenido,
	})
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MensajeResponse{
		Mensaje:    dto.T(c, "mensaje.instalador_subido"),
		Instalador: dto.ToInstaladorResponse(instalador),
	})
}

// Descargar godoc
// @Summary  Descargar un instalador por ID
// @Tags     instaladores
// @Produce  application/octet-stream
// @Security BearerAuth
// @Param    id path string true "ID del instalador"
// @Success  200 {file} binary
// @Failure  401 {object} dto.ErrorResponse
// @Failure  403 {object} dto.ErrorResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /instaladores/{id}/download [get]
func (h *InstaladorHandler) Descargar(c *gin.Context) {
	ruta, nombre, err := h.instaladorService.Descargar(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.FileAttachment(ruta, nombre)
}

// Actualizar godoc
// @Summary  Actualizar datos de un instalador
// @Tags     instaladores
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "ID del instalador"
// @Param    instalador body dto.ActualizarInstaladorRequest true "Campos a actualizar"
// @Success  200 {object} dto.MensajeResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /instaladores/{id} [put]
func (h *InstaladorHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarInstaladorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtraerErroresDeValidacion(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	instalador, err := h.instaladorService.Actualizar(c.Request.Context(), c.Param("id"), services.ActualizarInstaladorInput{
		Version:       req.Version,
		Estado:        req.Estado,
		Observaciones: req.Observaciones,
	})
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MensajeResponse{
		Mensaje:    dto.T(c, "mensaje.instalador_actualizado"),
		Instalador: dto.ToInstaladorResponse(instalador),
	})
}

// Eliminar godoc
// @Summary  Eliminar un instalador por ID
// @Tags     instaladores
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "ID del instalador"
// @Success  200 {object} dto.MensajeResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /instaladores/{id} [delete]
func (h *InstaladorHandler) Eliminar(c *gin.Context) {
	if err := h.instaladorService.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MensajeResponse{
		Mensaje: dto.T(c, "mensaje.instalador_eliminado"),
	})
}

// formOpcional retorna o campo do formulário como ponteiro, ou nil se vazio
func formOpcional(c *gin.Context, campo string) *string {
	if valor := c.PostForm(campo); valor != "" {
		return &valor
	}
	return nil
}
