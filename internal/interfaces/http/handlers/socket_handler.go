package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"homeservice.backend/internal/infrastructure/realtime"
	"homeservice.backend/internal/interfaces/http/middleware"
	"homeservice.backend/pkg/logger"
)

// SocketHandler upgrades /ws connections and attaches them to the hub
type SocketHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewSocketHandler(hub *realtime.Hub, allowedOrigins []string) *SocketHandler {
	return &SocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || middleware.OriginAllowed(allowedOrigins, origin)
			},
		},
	}
}

// GET /ws
func (h *SocketHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		logger.Warn(c.Request.Context(), "Socket upgrade failed", zap.Error(err))
		return
	}

	client := realtime.NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(context.WithoutCancel(c.Request.Context()))
}
