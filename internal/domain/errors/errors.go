package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrAplicativoNoEncontrado = errors.New("error.aplicativo_no_encontrado")
	ErrNombreDuplicado        = errors.New("error.nombre_duplicado")
	ErrInstaladorNoEncontrado = errors.New("error.instalador_no_encontrado")
	ErrArchivoNoEncontrado    = errors.New("error.archivo_no_encontrado")
	ErrUsuarioNoEncontrado    = errors.New("error.usuario_no_encontrado")
	ErrEmailYaRegistrado      = errors.New("error.email_ya_registrado")
	ErrCredencialesInvalidas  = errors.New("error.credenciales_invalidas")
	ErrNoAutenticado          = errors.New("error.no_autenticado")
	ErrSinPermiso             = errors.New("error.sin_permiso")
)

// Upload errors
// Validações do fluxo de upload, na ordem em que são verificadas
var (
	ErrArchivoRequerido    = errors.New("error.archivo_requerido")
	ErrTipoArchivoInvalido = errors.New("error.tipo_archivo_invalido")
	ErrAplicativoRequerido = errors.New("error.aplicativo_requerido")
	ErrVersionRequerida    = errors.New("error.version_requerida")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)
