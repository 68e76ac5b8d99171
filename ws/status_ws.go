package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/drxagencia/mateus-burger/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StatusHub transmite as transições aberto/fechado para os fronts
// conectados, para a pílula de status virar sem refresh.
type StatusHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	updates chan services.Status
	status  *services.StatusService
}

func NewStatusHub(status *services.StatusService) *StatusHub {
	return &StatusHub{
		clients: make(map[*websocket.Conn]bool),
		updates: make(chan services.Status, 8),
		status:  status,
	}
}

// Notify enfileira uma transição sem nunca bloquear o monitor.
func (h *StatusHub) Notify(st services.Status) {
	select {
	case h.updates <- st:
	default:
	}
}

func (h *StatusHub) Run() {
	for st := range h.updates {
		h.mu.Lock()
		for conn := range h.clients {
			if err := conn.WriteJSON(st); err != nil {
				log.Printf("ws write error: %v", err)
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.mu.Unlock()
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/status
func (h *StatusHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// o cliente recebe o status atual assim que conecta
	if err := conn.WriteJSON(h.status.Check()); err != nil {
		conn.Close()
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	go h.listen(conn)
}

// listen só existe para detectar a desconexão do cliente.
func (h *StatusHub) listen(conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
