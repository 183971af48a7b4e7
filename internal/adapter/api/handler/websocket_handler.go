package handler

import (
	"net/http"
	"strings"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/middleware"
	ws "kuchikomi/internal/infrastructure/websocket"
	"kuchikomi/pkg/errors"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restrict in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		authMiddleware: authMiddleware,
	}
}

// HandleWebSocket upgrades the connection and subscribes it to the requested
// rooms ("chat:{roomId}" or "dm:{reviewId}", comma separated). Browsers
// cannot set headers on websocket requests, so the ID token arrives as a
// query param. On register the manager replays each room's feed so the
// client converges on history without polling.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Token is required", nil)
	}

	userID, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	rooms := make(map[string]bool)
	for _, room := range strings.Split(c.QueryParam("rooms"), ",") {
		room = strings.TrimSpace(room)
		if strings.HasPrefix(room, "chat:") || strings.HasPrefix(room, "dm:") {
			rooms[room] = true
		}
	}
	if len(rooms) == 0 {
		return errors.BadRequest("At least one room subscription is required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		Rooms:  rooms,
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
