package assistant

import (
	"context"
	"fmt"
	"strings"

	"concierge/models"
	"concierge/services/assistant/normalize"

	"go.uber.org/zap"
)

var rideTypes = []string{"Sedan", "SUV", "Luxury", "Bike", "Auto"}

// rideSlots is the ride flow's declared field order: pickup, destination, ride_type,
// passengers.
func (s *DefaultAssistantService) rideSlots(st *models.RideState, args ToolArgs) []slot {
	return []slot{
		{
			name:     "pickup",
			prompt:   "Where should the driver pick you up?",
			supplied: func() bool { return args.Pickup != nil },
			apply: func(ctx context.Context) error {
				pickup := strings.TrimSpace(*args.Pickup)
				if pickup == "" {
					return NewValidationError("where should the driver pick you up?")
				}
				st.Pickup = &pickup
				return nil
			},
			filled: func() bool { return st.Pickup != nil },
		},
		{
			name:     "destination",
			prompt:   "Where are you headed?",
			supplied: func() bool { return args.Destination != nil },
			apply: func(ctx context.Context) error {
				destination := strings.TrimSpace(*args.Destination)
				if destination == "" {
					return NewValidationError("where are you headed?")
				}
				st.Destination = &destination
				return nil
			},
			filled: func() bool { return st.Destination != nil },
		},
		{
			name:     "ride_type",
			prompt:   "What kind of ride would you like: sedan, SUV, luxury, bike or auto?",
			supplied: func() bool { return args.RideType != nil },
			apply: func(ctx context.Context) error {
				idx, ok := normalize.Match(*args.RideType, rideTypes, normalize.PlaceThreshold)
				if !ok {
					return NewValidationError("I didn't catch the ride type %q, would you like a sedan, SUV, luxury, bike or auto?", *args.RideType)
				}
				st.RideType = &rideTypes[idx]
				return nil
			},
			filled: func() bool { return st.RideType != nil },
		},
		{
			name:     "passengers",
			prompt:   "How many passengers will be riding?",
			supplied: func() bool { return args.Passengers != nil },
			apply: func(ctx context.Context) error {
				if *args.Passengers < 1 {
					return NewValidationError("there must be at least one passenger, how many are riding?")
				}
				st.Passengers = args.Passengers
				return nil
			},
			filled: func() bool { return st.Passengers != nil },
		},
	}
}

func (s *DefaultAssistantService) rideDetails(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Ride
	if res, done := advance(ctx, OpRideDetails, s.rideSlots(st, args)); !done {
		return res
	}
	return s.rideSearch(ctx, st)
}

// rideSearch queries the ride type and samples the trip distance once; every fare
// afterwards is derived from that one distance.
func (s *DefaultAssistantService) rideSearch(ctx context.Context, st *models.RideState) models.ToolResult {
	rides, err := s.Catalog.Rides(ctx, *st.RideType)
	if err != nil {
		s.Logger.Error("ride search failed", zap.Error(err))
		return models.Error(OpRideDetails, "failed to search rides, please try again")
	}
	if len(rides) == 0 {
		return errorResult(OpRideDetails,
			NewEmptyResultError("no %s rides available right now, try a different ride type", *st.RideType))
	}

	st.SearchResults = rides
	st.Selection = nil
	st.DistanceKm = s.Distance()

	options := make([]map[string]interface{}, 0, len(rides))
	for i, r := range rides {
		options = append(options, map[string]interface{}{
			"position":      i + 1,
			"ride":          r,
			"estimatedFare": s.rideFare(r, st.DistanceKm),
		})
	}
	data := map[string]interface{}{
		"pickup":      *st.Pickup,
		"destination": *st.Destination,
		"rideType":    *st.RideType,
		"passengers":  *st.Passengers,
		"distanceKm":  st.DistanceKm,
		"options":     options,
	}

	s.publish(ctx, OpRideDetails, data)
	return models.Success(OpRideDetails,
		fmt.Sprintf("%d rides found from %s to %s", len(rides), *st.Pickup, *st.Destination), data)
}

func (s *DefaultAssistantService) rideSelect(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Ride
	if len(st.SearchResults) == 0 {
		return models.Error(OpRideSelect, "no ride results to choose from, search for rides first")
	}
	if args.Choice == nil {
		return models.Partial(OpRideSelect, "which ride would you like?")
	}

	names := make([]string, len(st.SearchResults))
	for i, r := range st.SearchResults {
		names[i] = r.Service
	}
	idx, err := resolveChoice(*args.Choice, names, normalize.PlaceThreshold)
	if err != nil {
		return errorResult(OpRideSelect, err)
	}

	selected := st.SearchResults[idx]
	st.Selection = &selected

	return models.Success(OpRideSelect,
		fmt.Sprintf("selected a %s %s ride", selected.Service, selected.Type),
		map[string]interface{}{
			"ride":          selected,
			"distanceKm":    st.DistanceKm,
			"estimatedFare": s.rideFare(selected, st.DistanceKm),
			"totalPrice":    s.rideTotal(st),
			"currency":      s.currencyOr(selected.Currency),
		})
}

func (s *DefaultAssistantService) ridePayment(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Ride
	if st.Selection == nil {
		return models.Error(OpRidePayment, "no ride selected yet, pick one of the search results first")
	}

	if args.PaymentMethod != nil {
		method := strings.TrimSpace(*args.PaymentMethod)
		if method != "" {
			st.PaymentMethod = &method
		}
	}
	if st.PaymentMethod == nil {
		return models.Partial(OpRidePayment, "how would you like to pay?")
	}

	return models.Success(OpRidePayment, "ride payment summary ready", map[string]interface{}{
		"service":       st.Selection.Service,
		"rideType":      st.Selection.Type,
		"pickup":        *st.Pickup,
		"destination":   *st.Destination,
		"distanceKm":    st.DistanceKm,
		"passengers":    *st.Passengers,
		"paymentMethod": *st.PaymentMethod,
		"totalPrice":    s.rideTotal(st),
		"currency":      s.currencyOr(st.Selection.Currency),
	})
}

func (s *DefaultAssistantService) rideConfirm(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Ride
	if st.Selection == nil || st.PaymentMethod == nil {
		return models.Error(OpRideConfirm, "select a ride and a payment method before confirming")
	}

	return s.commit(ctx, sess, args.Confirm, commitRequest{
		step:        OpRideConfirm,
		bookingType: string(models.FlowRide),
		itemID:      st.Selection.ID,
		details: map[string]interface{}{
			"service":       st.Selection.Service,
			"rideType":      st.Selection.Type,
			"pickup":        *st.Pickup,
			"destination":   *st.Destination,
			"distanceKm":    st.DistanceKm,
			"passengers":    *st.Passengers,
			"paymentMethod": *st.PaymentMethod,
		},
		total:     s.rideTotal(st),
		currency:  s.currencyOr(st.Selection.Currency),
		prompt:    "shall I book the ride?",
		confirmed: &st.Confirmed,
		bookingID: &st.BookingID,
	})
}

// rideFare is the per-passenger fare estimate for one ride option.
func (s *DefaultAssistantService) rideFare(r models.Ride, distanceKm int) float64 {
	return r.BaseFare + r.PerKm*float64(distanceKm)
}

// rideTotal is always derived from the current selection, distance and passenger
// count.
func (s *DefaultAssistantService) rideTotal(st *models.RideState) float64 {
	return s.rideFare(*st.Selection, st.DistanceKm) * float64(*st.Passengers)
}
