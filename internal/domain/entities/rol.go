package entities

// Rol representa o papel de um usuário no sistema
type Rol string

const (
	RolAdmin   Rol = "admin"
	RolUsuario Rol = "usuario"
)

// RolPorDefecto é o rol atribuído no registro quando nenhum é informado
const RolPorDefecto = RolUsuario

// EsConocido verifica se o rol é um dos valores reconhecidos pelo sistema
func (r Rol) EsConocido() bool {
	return r == RolAdmin || r == RolUsuario
}

// PuedeDescargar verifica se o rol permite baixar instaladores
func (r Rol) PuedeDescargar() bool {
	return r == RolAdmin || r == RolUsuario
}
