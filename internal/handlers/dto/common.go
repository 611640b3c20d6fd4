package dto

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/valueobjects"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	problem := problems.NewStatusProblem(status)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Detail = T(c, detailKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: *problem}
}

// ExtraerErroresDeValidacion converte erros do validator em erros de campo
func ExtraerErroresDeValidacion(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}

	campos := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		campos = append(campos, ValidationError{
			Field:   fe.Field(),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		})
	}
	return campos
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
	)
}

// ConflictErrorResponseI18n cria uma resposta para campo único duplicado.
// Conflitos respondem 400, não 409; só o tipo do problema indica conflito.
func ConflictErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusBadRequest,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
		http.StatusUnauthorized,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		http.StatusForbidden,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// ResponderError mapeia erros de domínio para o status e o corpo RFC 7807.
// Todo handler público converte falhas aqui; nada chega cru ao transporte.
func ResponderError(c *gin.Context, err error) {
	status, response := respuestaParaError(c, err)
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(status, response)
}

func respuestaParaError(c *gin.Context, err error) (int, ErrorResponse) {
	switch {
	case errs.Is(err, domainerrors.ErrAplicativoNoEncontrado),
		errs.Is(err, domainerrors.ErrInstaladorNoEncontrado),
		errs.Is(err, domainerrors.ErrArchivoNoEncontrado),
		errs.Is(err, domainerrors.ErrUsuarioNoEncontrado):
		return http.StatusNotFound, NotFoundErrorResponseI18n(c, err.Error())

	case errs.Is(err, domainerrors.ErrNombreDuplicado),
		errs.Is(err, domainerrors.ErrEmailYaRegistrado):
		return http.StatusBadRequest, ConflictErrorResponseI18n(c, err.Error())

	case errs.Is(err, domainerrors.ErrArchivoRequerido),
		errs.Is(err, domainerrors.ErrTipoArchivoInvalido),
		errs.Is(err, domainerrors.ErrAplicativoRequerido),
		errs.Is(err, domainerrors.ErrVersionRequerida):
		response := NewErrorResponseI18n(
			c,
			domainerrors.ProblemTypeValidation,
			"error.validation.title",
			err.Error(),
			http.StatusBadRequest,
		)
		return http.StatusBadRequest, response

	case errs.Is(err, valueobjects.ErrInvalidEmail):
		return http.StatusBadRequest, ValidationErrorResponseI18n(c, nil)

	case errs.Is(err, domainerrors.ErrCredencialesInvalidas),
		errs.Is(err, domainerrors.ErrNoAutenticado):
		response := NewErrorResponseI18n(
			c,
			domainerrors.ProblemTypeUnauthorized,
			"error.unauthorized.title",
			err.Error(),
			http.StatusUnauthorized,
		)
		return http.StatusUnauthorized, response

	case errs.Is(err, domainerrors.ErrSinPermiso):
		return http.StatusForbidden, ForbiddenErrorResponseI18n(c)

	default:
		// O erro original fica apenas no log do servidor
		return http.StatusInternalServerError, InternalErrorResponseI18n(c)
	}
}
