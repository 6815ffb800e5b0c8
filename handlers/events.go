package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// EventsHandler streams the assistant's published events to display clients over a
// websocket. Each client gets its own Redis subscription; losing a client never
// affects the dialogue.
type EventsHandler struct {
	Client  *redis.Client
	Channel string
	Logger  *zap.Logger
}

func NewEventsHandler(client *redis.Client, channel string, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{Client: client, Channel: channel, Logger: logger}
}

// Stream serves GET /api/events.
func (h *EventsHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.Client.Subscribe(ctx, h.Channel)
	defer sub.Close()

	// Drain reads so close frames are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	events := sub.Channel()
	for {
		select {
		case msg, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.Logger.Debug("event client gone", zap.Error(err))
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}
