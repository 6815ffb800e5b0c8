package assistant

import (
	"context"
	"strconv"
	"strings"

	"concierge/models"
	"concierge/services/assistant/normalize"

	"go.uber.org/zap"
)

// Tool operation names. These are also the step ids in result envelopes.
const (
	OpFlightDetails = "flight_details"
	OpFlightSelect  = "flight_select"
	OpFlightPayment = "flight_payment"
	OpFlightConfirm = "flight_confirm"

	OpFoodDetails = "food_details"
	OpFoodSelect  = "food_select"
	OpFoodItems   = "food_items"
	OpFoodPayment = "food_payment"
	OpFoodConfirm = "food_confirm"

	OpRideDetails = "ride_details"
	OpRideSelect  = "ride_select"
	OpRidePayment = "ride_payment"
	OpRideConfirm = "ride_confirm"

	OpHotelDetails = "hotel_details"
	OpHotelSelect  = "hotel_select"
	OpHotelPayment = "hotel_payment"
	OpHotelConfirm = "hotel_confirm"
)

// opFlows maps every operation to the flow it belongs to; the op name doubles as the
// intent signal for flow switching.
var opFlows = map[string]models.FlowKind{
	OpFlightDetails: models.FlowFlight,
	OpFlightSelect:  models.FlowFlight,
	OpFlightPayment: models.FlowFlight,
	OpFlightConfirm: models.FlowFlight,
	OpFoodDetails:   models.FlowFood,
	OpFoodSelect:    models.FlowFood,
	OpFoodItems:     models.FlowFood,
	OpFoodPayment:   models.FlowFood,
	OpFoodConfirm:   models.FlowFood,
	OpRideDetails:   models.FlowRide,
	OpRideSelect:    models.FlowRide,
	OpRidePayment:   models.FlowRide,
	OpRideConfirm:   models.FlowRide,
	OpHotelDetails:  models.FlowHotel,
	OpHotelSelect:   models.FlowHotel,
	OpHotelPayment:  models.FlowHotel,
	OpHotelConfirm:  models.FlowHotel,
}

// HandleTool is the single entry point for every tool invocation. It owns flow-switch
// detection: when the incoming operation belongs to a different flow than the active
// one, the outgoing flow's slots are cleared before delegating, so two flows' slots
// never coexist.
func (s *DefaultAssistantService) HandleTool(ctx context.Context, sessionID, op string, args ToolArgs) models.ToolResult {
	flow, ok := opFlows[op]
	if !ok {
		return models.Error(op, "unknown operation")
	}

	sess := s.Sessions.Get(sessionID)
	if sess.ActiveFlow != flow {
		if sess.ActiveFlow != models.FlowNone {
			s.Logger.Debug("switching flow",
				zap.String("sessionId", sessionID),
				zap.String("from", string(sess.ActiveFlow)),
				zap.String("to", string(flow)))
			sess.ResetFlow(sess.ActiveFlow)
		}
		sess.ActiveFlow = flow
	}

	// Request-level bound on backend queries; a hung store query becomes an error
	// envelope instead of a hung conversation.
	ctx, cancel := context.WithTimeout(ctx, s.QueryTimeout)
	defer cancel()

	switch op {
	case OpFlightDetails:
		return s.flightDetails(ctx, sess, args)
	case OpFlightSelect:
		return s.flightSelect(sess, args)
	case OpFlightPayment:
		return s.flightPayment(sess, args)
	case OpFlightConfirm:
		return s.flightConfirm(ctx, sess, args)
	case OpFoodDetails:
		return s.foodDetails(ctx, sess, args)
	case OpFoodSelect:
		return s.foodSelect(ctx, sess, args)
	case OpFoodItems:
		return s.foodItems(sess, args)
	case OpFoodPayment:
		return s.foodPayment(sess, args)
	case OpFoodConfirm:
		return s.foodConfirm(ctx, sess, args)
	case OpRideDetails:
		return s.rideDetails(ctx, sess, args)
	case OpRideSelect:
		return s.rideSelect(sess, args)
	case OpRidePayment:
		return s.ridePayment(sess, args)
	case OpRideConfirm:
		return s.rideConfirm(ctx, sess, args)
	case OpHotelDetails:
		return s.hotelDetails(ctx, sess, args)
	case OpHotelSelect:
		return s.hotelSelect(sess, args)
	case OpHotelPayment:
		return s.hotelPayment(sess, args)
	case OpHotelConfirm:
		return s.hotelConfirm(ctx, sess, args)
	}
	return models.Error(op, "unknown operation")
}

// resolveChoice maps a selection utterance to a 0-based index into the current search
// results: a purely numeric utterance is a 1-based position, anything else is fuzzy
// matched against the candidate names.
func resolveChoice(choice string, names []string, threshold int) (int, error) {
	text := strings.TrimSpace(choice)
	if text == "" {
		return -1, NewValidationError("please tell me which option you want")
	}

	if pos, err := strconv.Atoi(text); err == nil {
		if pos < 1 || pos > len(names) {
			return -1, NewNotFoundError("option %d is not in the list, pick between 1 and %d", pos, len(names))
		}
		return pos - 1, nil
	}

	idx, ok := normalize.Match(text, names, threshold)
	if !ok {
		return -1, NewNotFoundError("could not find %q in the current options, please try again", text)
	}
	return idx, nil
}
