package handlers

import (
	"net/http"
	"time"

	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IssueToken serves POST /api/token. It hands the voice runtime or a display surface
// a signed caller token for the given room.
func IssueToken(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
		Room string `json:"room"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Name == "" || input.Room == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing fields", "name and room are required")
		return
	}

	token, err := utils.GenerateToken(uuid.New().String(), input.Room, 30*24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	// Log the hash, never the token itself.
	utils.GetLogger().Info("caller token issued",
		zap.String("room", input.Room),
		zap.String("tokenHash", utils.HashToken(token)))

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"name":  input.Name,
		"room":  input.Room,
	})
}
