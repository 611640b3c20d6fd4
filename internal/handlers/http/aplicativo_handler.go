package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/instaladores-backend/internal/handlers/dto"
	"github.com/rafabene/instaladores-backend/internal/services"
)

// AplicativoHandler lida com requisições HTTP de aplicativos
type AplicativoHandler struct {
	aplicativoService *services.AplicativoService
}

// NewAplicativoHandler cria um novo AplicativoHandler
func NewAplicativoHandler(aplicativoService *services.AplicativoService) *AplicativoHandler {
	return &AplicativoHandler{
		aplicativoService: aplicativoService,
	}
}

// Listar godoc
// @Summary  Obtener todos los aplicativos
// @Tags     aplicativos
// @Produce  json
// @Success  200 {array} dto.AplicativoResponse
// @Router   /aplicativos [get]
func (h *AplicativoHandler) Listar(c *gin.Context) {
	aplicativos, err := h.aplicativoService.Listar(c.Request.Context())
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAplicativoResponses(aplicativos))
}

// Obtener godoc
// @Summary  Obtener un aplicativo por ID
// @Tags     aplicativos
// @Produce  json
// @Param    id path string true "ID del aplicativo"
// @Success  200 {object} dto.AplicativoResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /aplicativos/{id} [get]
func (h *AplicativoHandler) Obtener(c *gin.Context) {
	aplicativo, err := h.aplicativoService.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAplicativoResponse(aplicativo))
}

// Crear godoc
// @Summary  Crear un nuevo aplicativo
// @Tags     aplicativos
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    aplicativo body dto.CrearAplicativoRequest true "Datos del aplicativo"
// @Success  201 {object} dto.MensajeResponse
// @Failure  400 {object} dto.ErrorResponse
// @Failure  401 {object} dto.ErrorResponse
// @Failure  403 {object} dto.ErrorResponse
// @Router   /aplicativos [post]
func (h *AplicativoHandler) Crear(c *gin.Context) {
	var req dto.CrearAplicativoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtraerErroresDeValidacion(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	aplicativo, err := h.aplicativoService.Crear(c.Request.Context(), services.CrearInput{
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Observaciones: req.Observaciones,
		VersionActual: req.VersionActual,
	})
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MensajeResponse{
		Mensaje:    dto.T(c, "mensaje.aplicativo_creado"),
		Aplicativo: dto.ToAplicativoResponse(aplicativo),
	})
}

// Actualizar godoc
// @Summary  Actualizar un aplicativo existente
// @Tags     aplicativos
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "ID del aplicativo"
// @Param    aplicativo body dto.ActualizarAplicativoRequest true "Campos a actualizar"
// @Success  200 {object} dto.MensajeResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /aplicativos/{id} [put]
func (h *AplicativoHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarAplicativoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtraerErroresDeValidacion(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	aplicativo, err := h.aplicativoService.Actualizar(c.Request.Context(), c.Param("id"), services.ActualizarInput{
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Observaciones: req.Observaciones,
		VersionActual: req.VersionActual,
	})
	if err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MensajeResponse{
		Mensaje:    dto.T(c, "mensaje.aplicativo_actualizado"),
		Aplicativo: dto.ToAplicativoResponse(aplicativo),
	})
}

// Eliminar godoc
// @Summary  Eliminar un aplicativo y sus instaladores
// @Tags     aplicativos
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "ID del aplicativo"
// @Success  200 {object} dto.MensajeResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /aplicativos/{id} [delete]
func (h *AplicativoHandler) Eliminar(c *gin.Context) {
	if err := h.aplicativoService.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		dto.ResponderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MensajeResponse{
		Mensaje: dto.T(c, "mensaje.aplicativo_eliminado"),
	})
}
