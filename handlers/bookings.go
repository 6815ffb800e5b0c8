package handlers

import (
	"net/http"

	bookingsRepo "concierge/database/repository/bookings"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes read access to the bookings ledger so display surfaces can
// show past bookings and receipts.
type BookingHandler struct {
	Repo   bookingsRepo.BookingRepository
	Logger *zap.Logger
}

func NewBookingHandler(repo bookingsRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Repo: repo, Logger: logger}
}

// GetBooking serves GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookings serves GET /api/bookings and returns every booking placed in the given
// session.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		sessionID = c.GetHeader("X-Session-ID")
	}
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing session id", "provide sessionId as a query parameter or the X-Session-ID header")
		return
	}

	bookings, err := h.Repo.GetByUserID(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
