package handlers

import (
	"net/http"

	"concierge/services/assistant"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the assistant's tool operations over HTTP. The voice
// runtime calls one endpoint per tool invocation and relays the envelope back to the
// model.
type AssistantHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Service: svc, Logger: logger}
}

// HandleTool serves POST /api/assistant/:op.
func (h *AssistantHandler) HandleTool(c *gin.Context) {
	op := c.Param("op")

	var input struct {
		SessionID string             `json:"sessionId"`
		Args      assistant.ToolArgs `json:"args"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.SessionID == "" {
		input.SessionID = c.GetHeader("X-Session-ID")
	}
	if input.SessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing session id", "provide sessionId in the body or the X-Session-ID header")
		return
	}

	result := h.Service.HandleTool(c.Request.Context(), input.SessionID, op, input.Args)
	h.Logger.Debug("tool handled",
		zap.String("sessionId", input.SessionID),
		zap.String("op", op),
		zap.String("status", result.Status))
	c.JSON(http.StatusOK, result)
}

// EndSession serves DELETE /api/assistant/session/:sessionID and discards the
// conversation's transient state.
func (h *AssistantHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	h.Service.EndSession(sessionID)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
