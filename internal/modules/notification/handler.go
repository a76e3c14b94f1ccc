package notification

import (
	"log"
	"net/http"

	"jovemservicos/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.ListEvents)
	rg.GET("/events/ws", h.Stream)
}

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.service.ListForUser(c.Request.Context(), c.GetInt64("user_id"), 50)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// Stream upgrades the dashboard connection; events are pushed as they are
// emitted and the read loop only watches for the client going away.
func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetInt64("user_id")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("level=warn msg=websocket upgrade failed user_id=%d err=%v", userID, err)
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
