package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Assistant tool-call boundary.
	HandleTool gin.HandlerFunc
	EndSession gin.HandlerFunc

	// Bookings ledger reads.
	GetBooking   gin.HandlerFunc
	ListBookings gin.HandlerFunc

	// Caller token issuance.
	IssueToken gin.HandlerFunc

	// Display-surface event stream.
	StreamEvents gin.HandlerFunc
}
