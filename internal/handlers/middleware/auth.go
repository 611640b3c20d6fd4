package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/i18n"
)

// IdentityContextKey é a chave da identidade autenticada no contexto do Gin
const IdentityContextKey = "identidad"

// AuthMiddleware valida o token de sessão e aplica o controle de roles
type AuthMiddleware struct {
	tokens      ports.TokenService
	i18nService *i18n.Service
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens ports.TokenService, i18nService *i18n.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		i18nService: i18nService,
	}
}

// Autenticar exige um bearer token válido e coloca a identidade no contexto
func (m *AuthMiddleware) Autenticar() gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			m.abortar(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		identidad, err := m.tokens.Validar(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			m.abortar(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		c.Set(IdentityContextKey, identidad)
		c.Next()
	}
}

// Autorizar falha com 403 quando o rol da identidade não está no conjunto
// permitido, e com 401 quando nenhuma identidade chegou do Autenticar
func (m *AuthMiddleware) Autorizar(permitidos ...entities.Rol) gin.HandlerFunc {
	return func(c *gin.Context) {
		identidad := IdentidadDesdeContexto(c)
		if identidad == nil {
			m.abortar(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.no_autenticado")
			return
		}

		for _, rol := range permitidos {
			if identidad.Rol == rol {
				c.Next()
				return
			}
		}

		m.abortar(c, http.StatusForbidden, domainerrors.ProblemTypeForbidden,
			"error.forbidden.title", "error.sin_permiso")
	}
}

// IdentidadDesdeContexto retorna a identidade autenticada, ou nil
func IdentidadDesdeContexto(c *gin.Context) *ports.Identidad {
	valor, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil
	}

	identidad, ok := valor.(*ports.Identidad)
	if !ok {
		return nil
	}
	return identidad
}

func (m *AuthMiddleware) abortar(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	lang := c.GetString(LanguageContextKey)
	if lang == "" {
		lang = m.i18nService.GetDefaultLanguage()
	}

	problem := problems.NewStatusProblem(status)
	problem.Type = baseURL + problemType
	problem.Title = m.i18nService.T(lang, titleKey)
	problem.Detail = m.i18nService.T(lang, detailKey)
	problem.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}
