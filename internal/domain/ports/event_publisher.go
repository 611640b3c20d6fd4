package ports

import "time"

// Tipos de eventos do ciclo de vida de instaladores
const (
	EventoInstaladorSubido    = "instalador_subido"
	EventoInstaladorEliminado = "instalador_eliminado"
)

// Evento representa uma mudança no catálogo transmitida aos clientes conectados
type Evento struct {
	Tipo         string    `json:"tipo"`
	InstaladorID string    `json:"instaladorId"`
	AplicativoID string    `json:"aplicativoId"`
	Version      string    `json:"version"`
	Fecha        time.Time `json:"fecha"`
}

// EventPublisher define a interface para publicação de eventos do catálogo
type EventPublisher interface {
	Publicar(evento Evento)
}
