package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/instaladores-backend/internal/domain/ports"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS já é tratado no router
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub implementa ports.EventPublisher transmitindo eventos do catálogo
// a todos os clientes websocket conectados
type Hub struct {
	logger ports.Logger

	mu       sync.RWMutex
	clientes map[*cliente]struct{}
}

type cliente struct {
	conn  *websocket.Conn
	envio chan []byte
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		logger:   logger,
		clientes: make(map[*cliente]struct{}),
	}
}

// Publicar envia o evento para todos os clientes conectados.
// Clientes com o buffer de envio cheio perdem o evento.
func (h *Hub) Publicar(evento ports.Evento) {
	data, err := json.Marshal(evento)
	if err != nil {
		h.logger.Error("failed to marshal event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clientes {
		select {
		case cl.envio <- data:
		default:
		}
	}
}

// Manejar faz o upgrade da conexão HTTP e registra o cliente no hub
func (h *Hub) Manejar(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	cl := &cliente{
		conn:  conn,
		envio: make(chan []byte, 16),
	}

	h.mu.Lock()
	h.clientes[cl] = struct{}{}
	h.mu.Unlock()

	go h.escribir(cl)
	go h.leer(cl)
}

func (h *Hub) escribir(cl *cliente) {
	for data := range cl.envio {
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
	cl.conn.Close()
}

// leer descarta mensagens do cliente; serve só para detectar o fechamento
func (h *Hub) leer(cl *cliente) {
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			break
		}
	}
	h.quitar(cl)
}

func (h *Hub) quitar(cl *cliente) {
	h.mu.Lock()
	if _, ok := h.clientes[cl]; ok {
		delete(h.clientes, cl)
		close(cl.envio)
	}
	h.mu.Unlock()
	cl.conn.Close()
}
