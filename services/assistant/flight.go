package assistant

import (
	"context"
	"fmt"
	"strings"

	"concierge/models"
	"concierge/services/assistant/normalize"

	"go.uber.org/zap"
)

var cabinClasses = []string{"economy", "premium economy", "business", "first"}

// flightSlots is the flight flow's declared field order: from_city, to_city,
// departure_date, trip_type, return_date (round-trip only), adults, kids, cabin_class.
func (s *DefaultAssistantService) flightSlots(st *models.FlightState, args ToolArgs) []slot {
	return []slot{
		{
			name:     "from_city",
			prompt:   "Which city are you flying from?",
			supplied: func() bool { return args.FromCity != nil },
			apply: func(ctx context.Context) error {
				city, err := s.resolveCity(ctx, *args.FromCity)
				if err != nil {
					return err
				}
				st.FromCity = city
				return nil
			},
			filled: func() bool { return st.FromCity != nil },
		},
		{
			name:     "to_city",
			prompt:   "Which city are you flying to?",
			supplied: func() bool { return args.ToCity != nil },
			apply: func(ctx context.Context) error {
				city, err := s.resolveCity(ctx, *args.ToCity)
				if err != nil {
					return err
				}
				st.ToCity = city
				return nil
			},
			filled: func() bool { return st.ToCity != nil },
		},
		{
			name:     "departure_date",
			prompt:   "When would you like to depart?",
			supplied: func() bool { return args.DepartureDate != nil },
			apply: func(ctx context.Context) error {
				date, err := normalize.DateString(*args.DepartureDate, s.Now())
				if err != nil {
					return NewValidationError("I couldn't understand the date %q, when would you like to depart?", *args.DepartureDate)
				}
				st.DepartureDate = &date
				return nil
			},
			filled: func() bool { return st.DepartureDate != nil },
		},
		{
			name:     "trip_type",
			prompt:   "Is this a one-way or a round trip?",
			supplied: func() bool { return args.TripType != nil },
			apply: func(ctx context.Context) error {
				trip, err := parseTripType(*args.TripType)
				if err != nil {
					return err
				}
				// Going back to one-way drops a return date captured during an
				// earlier round-trip attempt.
				if trip == models.TripOneWay {
					st.ReturnDate = nil
				}
				st.TripType = &trip
				return nil
			},
			filled: func() bool { return st.TripType != nil },
		},
		{
			name:   "return_date",
			prompt: "When would you like to fly back?",
			required: func() bool {
				return st.TripType != nil && *st.TripType == models.TripRoundTrip
			},
			supplied: func() bool { return args.ReturnDate != nil },
			apply: func(ctx context.Context) error {
				date, err := normalize.DateString(*args.ReturnDate, s.Now())
				if err != nil {
					return NewValidationError("I couldn't understand the date %q, when would you like to fly back?", *args.ReturnDate)
				}
				st.ReturnDate = &date
				return nil
			},
			filled: func() bool { return st.ReturnDate != nil },
		},
		{
			name:     "adults",
			prompt:   "How many adults are travelling?",
			supplied: func() bool { return args.Adults != nil },
			apply: func(ctx context.Context) error {
				if *args.Adults < 1 {
					return NewValidationError("there must be at least one adult, how many adults are travelling?")
				}
				st.Adults = args.Adults
				return nil
			},
			filled: func() bool { return st.Adults != nil },
		},
		{
			name:     "kids",
			prompt:   "How many kids are travelling?",
			supplied: func() bool { return args.Kids != nil },
			apply: func(ctx context.Context) error {
				if *args.Kids < 0 {
					return NewValidationError("the number of kids can't be negative, how many kids are travelling?")
				}
				st.Kids = args.Kids
				st.KidsAsked = true
				return nil
			},
			// Zero kids is a valid final answer, so the answered flag decides, not
			// the value.
			filled: func() bool { return st.KidsAsked },
		},
		{
			name:     "cabin_class",
			prompt:   "Which cabin class would you like: economy, premium economy, business or first?",
			supplied: func() bool { return args.CabinClass != nil },
			apply: func(ctx context.Context) error {
				idx, ok := normalize.Match(*args.CabinClass, cabinClasses, normalize.PlaceThreshold)
				if !ok {
					return NewValidationError("I didn't catch the cabin class %q, would you like economy, premium economy, business or first?", *args.CabinClass)
				}
				st.CabinClass = &cabinClasses[idx]
				return nil
			},
			filled: func() bool { return st.CabinClass != nil },
		},
	}
}

// flightDetails applies the supplied slots and either asks for the next missing one
// or runs the flight search once every required slot is filled.
func (s *DefaultAssistantService) flightDetails(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Flight
	if res, done := advance(ctx, OpFlightDetails, s.flightSlots(st, args)); !done {
		return res
	}
	return s.flightSearch(ctx, st)
}

// flightSearch queries the route and replaces the result list wholesale. An empty
// route is an error with the collected slots left intact so the user can adjust.
func (s *DefaultAssistantService) flightSearch(ctx context.Context, st *models.FlightState) models.ToolResult {
	flights, err := s.Catalog.Flights(ctx, st.FromCity.Name, st.ToCity.Name)
	if err != nil {
		s.Logger.Error("flight search failed", zap.Error(err))
		return models.Error(OpFlightDetails, "failed to search flights, please try again")
	}
	if len(flights) == 0 {
		return errorResult(OpFlightDetails,
			NewEmptyResultError("no flights found from %s to %s, try a different route", st.FromCity.Name, st.ToCity.Name))
	}

	st.SearchResults = flights
	st.Selection = nil

	options := make([]map[string]interface{}, 0, len(flights))
	for i, f := range flights {
		options = append(options, map[string]interface{}{
			"position": i + 1,
			"flight":   f,
		})
	}
	data := map[string]interface{}{
		"fromCity":      st.FromCity,
		"toCity":        st.ToCity,
		"departureDate": *st.DepartureDate,
		"tripType":      *st.TripType,
		"returnDate":    st.ReturnDate,
		"adults":        *st.Adults,
		"kids":          *st.Kids,
		"cabinClass":    *st.CabinClass,
		"options":       options,
	}

	s.publish(ctx, OpFlightDetails, data)
	return models.Success(OpFlightDetails,
		fmt.Sprintf("%d flights found from %s to %s", len(flights), st.FromCity.Name, st.ToCity.Name), data)
}

// flightSelect resolves the user's choice against the current result list, by 1-based
// position or by airline name.
func (s *DefaultAssistantService) flightSelect(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Flight
	if len(st.SearchResults) == 0 {
		return models.Error(OpFlightSelect, "no flight results to choose from, search for flights first")
	}
	if args.Choice == nil {
		return models.Partial(OpFlightSelect, "which flight would you like?")
	}

	names := make([]string, len(st.SearchResults))
	for i, f := range st.SearchResults {
		names[i] = f.Airline
	}
	idx, err := resolveChoice(*args.Choice, names, normalize.PlaceThreshold)
	if err != nil {
		return errorResult(OpFlightSelect, err)
	}

	selected := st.SearchResults[idx]
	st.Selection = &selected

	return models.Success(OpFlightSelect,
		fmt.Sprintf("selected %s flight from %s to %s", selected.Airline, selected.FromCity, selected.ToCity),
		map[string]interface{}{
			"flight":     selected,
			"totalPrice": s.flightTotal(st),
			"currency":   s.currencyOr(selected.Currency),
		})
}

// flightPayment captures the payment method and returns a summary. The total is
// recomputed from the live selection and passenger counts on every call.
func (s *DefaultAssistantService) flightPayment(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Flight
	if st.Selection == nil {
		return models.Error(OpFlightPayment, "no flight selected yet, pick one of the search results first")
	}

	if args.PaymentMethod != nil {
		method := strings.TrimSpace(*args.PaymentMethod)
		if method != "" {
			st.PaymentMethod = &method
		}
	}
	if st.PaymentMethod == nil {
		return models.Partial(OpFlightPayment, "how would you like to pay?")
	}

	total := s.flightTotal(st)
	return models.Success(OpFlightPayment, "flight payment summary ready", map[string]interface{}{
		"airline":       st.Selection.Airline,
		"fromCity":      st.Selection.FromCity,
		"toCity":        st.Selection.ToCity,
		"adults":        *st.Adults,
		"kids":          *st.Kids,
		"cabinClass":    *st.CabinClass,
		"paymentMethod": *st.PaymentMethod,
		"totalPrice":    total,
		"currency":      s.currencyOr(st.Selection.Currency),
	})
}

// flightConfirm performs the single booking write for the flight flow.
func (s *DefaultAssistantService) flightConfirm(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Flight
	if st.Selection == nil || st.PaymentMethod == nil {
		return models.Error(OpFlightConfirm, "select a flight and a payment method before confirming")
	}

	endDate := ""
	if st.ReturnDate != nil {
		endDate = *st.ReturnDate
	}
	return s.commit(ctx, sess, args.Confirm, commitRequest{
		step:        OpFlightConfirm,
		bookingType: string(models.FlowFlight),
		itemID:      st.Selection.ID,
		details: map[string]interface{}{
			"airline":       st.Selection.Airline,
			"fromCity":      st.Selection.FromCity,
			"toCity":        st.Selection.ToCity,
			"fromCityCode":  st.Selection.FromCityCode,
			"toCityCode":    st.Selection.ToCityCode,
			"departureTime": st.Selection.DepartureTime,
			"arrivalTime":   st.Selection.ArrivalTime,
			"tripType":      *st.TripType,
			"adults":        *st.Adults,
			"kids":          *st.Kids,
			"cabinClass":    *st.CabinClass,
			"paymentMethod": *st.PaymentMethod,
		},
		total:     s.flightTotal(st),
		currency:  s.currencyOr(st.Selection.Currency),
		startDate: *st.DepartureDate,
		endDate:   endDate,
		prompt:    "shall I confirm the flight booking?",
		confirmed: &st.Confirmed,
		bookingID: &st.BookingID,
	})
}

// flightTotal is always derived from the current selection and counts.
func (s *DefaultAssistantService) flightTotal(st *models.FlightState) float64 {
	passengers := *st.Adults + *st.Kids
	return st.Selection.Price * float64(passengers)
}

// resolveCity fuzzy-matches free text against the backend city list and returns the
// full city record including its code.
func (s *DefaultAssistantService) resolveCity(ctx context.Context, input string) (*models.City, error) {
	cities, err := s.loadCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	idx, ok := normalize.Match(input, names, normalize.PlaceThreshold)
	if !ok {
		return nil, NewNotFoundError("I don't recognize the city %q, could you say it again?", input)
	}
	city := cities[idx]
	return &city, nil
}

func parseTripType(input string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "one-way", "one way", "oneway", "single":
		return models.TripOneWay, nil
	case "round-trip", "round trip", "roundtrip", "return", "round":
		return models.TripRoundTrip, nil
	}
	return "", NewValidationError("is %q a one-way or a round trip?", input)
}
