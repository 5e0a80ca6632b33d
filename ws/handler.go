package ws

import (
	"net/http"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketHandler accepts realtime connections. No application messages are
// exchanged yet; connect and disconnect are logged and inbound frames are
// discarded.
type WebSocketHandler struct{}

func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{}
}

func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "websocket upgrade failed", err)
		return
	}
	defer conn.Close()

	logger.CtxInfo(c.Request.Context(), "websocket client connected", "user_id", userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	logger.CtxInfo(c.Request.Context(), "websocket client disconnected", "user_id", userID)
}
