package assistant

import (
	"context"

	"concierge/models"

	"go.uber.org/zap"
)

// commitRequest describes the single ledger write that ends a flow.
type commitRequest struct {
	step        string
	bookingType string
	itemID      string
	details     map[string]interface{}
	total       float64
	currency    string
	startDate   string
	endDate     string
	prompt      string
	confirmed   *bool
	bookingID   *string
}

// commit is the booking committer shared by all four flows. It writes exactly one
// ledger row per logical confirmation: a session whose flow is already confirmed
// short-circuits with the stored booking id instead of inserting again. A negative
// confirmation leaves the state untouched so the user can confirm later.
func (s *DefaultAssistantService) commit(ctx context.Context, sess *models.Session, confirm *bool, req commitRequest) models.ToolResult {
	if *req.confirmed {
		return models.Success(req.step, "booking already confirmed", map[string]interface{}{
			"bookingId": *req.bookingID,
		})
	}

	if confirm == nil {
		return models.Partial(req.step, req.prompt)
	}
	if !*confirm {
		return errorResult(req.step, NewCancelledError("cancelled"))
	}

	booking := models.Booking{
		BookingType:    req.bookingType,
		UserID:         sess.ID,
		ItemID:         req.itemID,
		BookingDetails: req.details,
		PaymentStatus:  "paid",
		TotalPrice:     req.total,
		Currency:       req.currency,
		BookingDate:    s.Now(),
		StartDate:      req.startDate,
		EndDate:        req.endDate,
	}

	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		s.Logger.Error("failed to persist booking",
			zap.String("sessionId", sess.ID),
			zap.String("bookingType", req.bookingType),
			zap.Error(err))
		return errorResult(req.step, NewPersistenceError("failed to place the booking, please try again"))
	}

	*req.confirmed = true
	*req.bookingID = id
	booking.ID = id

	s.publish(ctx, req.step, booking)
	s.Logger.Info("booking confirmed",
		zap.String("sessionId", sess.ID),
		zap.String("bookingType", req.bookingType),
		zap.String("bookingId", id),
		zap.Float64("total", req.total))

	return models.Success(req.step, "booking confirmed", booking)
}
