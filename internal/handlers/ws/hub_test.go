package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/instaladores-backend/internal/domain/ports"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

func setupHubServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(noopLogger{})
	router := gin.New()
	router.GET("/eventos", hub.Manejar)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return hub, server
}

func conectar(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/eventos"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("falha ao conectar: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub(t *testing.T) {
	t.Run("entrega o evento publicado ao cliente conectado", func(t *testing.T) {
		hub, server := setupHubServer(t)
		conn := conectar(t, server)

		// esperar o registro do cliente no hub
		esperarClientes(t, hub, 1)

		hub.Publicar(ports.Evento{
			Tipo:         ports.EventoInstaladorSubido,
			InstaladorID: "instalador-1",
			AplicativoID: "aplicativo-1",
			Version:      "1.2.0",
			Fecha:        time.Now(),
		})

		if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
			t.Fatalf("falha ao configurar deadline: %v", err)
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("falha ao ler mensagem: %v", err)
		}

		var evento ports.Evento
		if err := json.Unmarshal(data, &evento); err != nil {
			t.Fatalf("mensagem inválida: %v", err)
		}
		if evento.Tipo != ports.EventoInstaladorSubido {
			t.Errorf("esperava tipo %q, obteve %q", ports.EventoInstaladorSubido, evento.Tipo)
		}
		if evento.InstaladorID != "instalador-1" {
			t.Errorf("esperava instalador-1, obteve %q", evento.InstaladorID)
		}
	})

	t.Run("remove o cliente quando a conexão fecha", func(t *testing.T) {
		hub, server := setupHubServer(t)
		conn := conectar(t, server)
		esperarClientes(t, hub, 1)

		conn.Close()
		esperarClientes(t, hub, 0)

		// publicar sem clientes não pode travar nem entrar em pânico
		hub.Publicar(ports.Evento{Tipo: ports.EventoInstaladorEliminado})
	})
}

func esperarClientes(t *testing.T, hub *Hub, esperado int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		atual := len(hub.clientes)
		hub.mu.RUnlock()
		if atual == esperado {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("esperava %d clientes conectados", esperado)
}
