package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"concierge/models"
	"concierge/services/assistant/normalize"

	"go.uber.org/zap"
)

// hotelSlots is the hotel flow's declared field order: city, check_in, check_out,
// rooms.
func (s *DefaultAssistantService) hotelSlots(st *models.HotelState, args ToolArgs) []slot {
	return []slot{
		{
			name:     "city",
			prompt:   "Which city would you like to stay in?",
			supplied: func() bool { return args.City != nil },
			apply: func(ctx context.Context) error {
				city, err := s.resolveCity(ctx, *args.City)
				if err != nil {
					return err
				}
				st.City = &city.Name
				return nil
			},
			filled: func() bool { return st.City != nil },
		},
		{
			name:     "check_in",
			prompt:   "When would you like to check in?",
			supplied: func() bool { return args.CheckIn != nil },
			apply: func(ctx context.Context) error {
				date, err := normalize.DateString(*args.CheckIn, s.Now())
				if err != nil {
					return NewValidationError("I couldn't understand the date %q, when would you like to check in?", *args.CheckIn)
				}
				st.CheckIn = &date
				// Moving check-in at or past the captured check-out invalidates it;
				// the flow asks for a new check-out.
				if st.CheckOut != nil && *st.CheckOut <= date {
					st.CheckOut = nil
				}
				return nil
			},
			filled: func() bool { return st.CheckIn != nil },
		},
		{
			name:     "check_out",
			prompt:   "When would you like to check out?",
			supplied: func() bool { return args.CheckOut != nil },
			apply: func(ctx context.Context) error {
				date, err := normalize.DateString(*args.CheckOut, s.Now())
				if err != nil {
					return NewValidationError("I couldn't understand the date %q, when would you like to check out?", *args.CheckOut)
				}
				if st.CheckIn != nil && date <= *st.CheckIn {
					return NewValidationError("check-out must be after check-in (%s), when would you like to check out?", *st.CheckIn)
				}
				st.CheckOut = &date
				return nil
			},
			filled: func() bool { return st.CheckOut != nil },
		},
		{
			name:     "rooms",
			prompt:   "How many rooms do you need?",
			supplied: func() bool { return args.Rooms != nil },
			apply: func(ctx context.Context) error {
				if *args.Rooms < 1 {
					return NewValidationError("I need at least one room to book, how many rooms do you need?")
				}
				st.Rooms = args.Rooms
				return nil
			},
			filled: func() bool { return st.Rooms != nil },
		},
	}
}

func (s *DefaultAssistantService) hotelDetails(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Hotel
	if res, done := advance(ctx, OpHotelDetails, s.hotelSlots(st, args)); !done {
		return res
	}
	return s.hotelSearch(ctx, st)
}

func (s *DefaultAssistantService) hotelSearch(ctx context.Context, st *models.HotelState) models.ToolResult {
	hotels, err := s.Catalog.Hotels(ctx, *st.City)
	if err != nil {
		s.Logger.Error("hotel search failed", zap.Error(err))
		return models.Error(OpHotelDetails, "failed to search hotels, please try again")
	}
	if len(hotels) == 0 {
		return errorResult(OpHotelDetails,
			NewEmptyResultError("no hotels found in %s, try a different city", *st.City))
	}

	st.SearchResults = hotels
	st.Selection = nil

	options := make([]map[string]interface{}, 0, len(hotels))
	for i, h := range hotels {
		options = append(options, map[string]interface{}{
			"position": i + 1,
			"hotel":    h,
		})
	}
	data := map[string]interface{}{
		"city":     *st.City,
		"checkIn":  *st.CheckIn,
		"checkOut": *st.CheckOut,
		"rooms":    *st.Rooms,
		"options":  options,
	}

	s.publish(ctx, OpHotelDetails, data)
	return models.Success(OpHotelDetails,
		fmt.Sprintf("%d hotels found in %s", len(hotels), *st.City), data)
}

func (s *DefaultAssistantService) hotelSelect(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Hotel
	if len(st.SearchResults) == 0 {
		return models.Error(OpHotelSelect, "no hotel results to choose from, search for hotels first")
	}
	if args.Choice == nil {
		return models.Partial(OpHotelSelect, "which hotel would you like?")
	}

	names := make([]string, len(st.SearchResults))
	for i, h := range st.SearchResults {
		names[i] = h.Name
	}
	idx, err := resolveChoice(*args.Choice, names, normalize.PlaceThreshold)
	if err != nil {
		return errorResult(OpHotelSelect, err)
	}

	selected := st.SearchResults[idx]
	st.Selection = &selected

	return models.Success(OpHotelSelect,
		fmt.Sprintf("selected %s in %s", selected.Name, selected.City),
		map[string]interface{}{
			"hotel":      selected,
			"nights":     s.hotelNights(st),
			"totalPrice": s.hotelTotal(st),
			"currency":   s.currencyOr(selected.Currency),
		})
}

func (s *DefaultAssistantService) hotelPayment(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Hotel
	if st.Selection == nil {
		return models.Error(OpHotelPayment, "no hotel selected yet, pick one of the search results first")
	}

	if args.PaymentMethod != nil {
		method := strings.TrimSpace(*args.PaymentMethod)
		if method != "" {
			st.PaymentMethod = &method
		}
	}
	if st.PaymentMethod == nil {
		return models.Partial(OpHotelPayment, "how would you like to pay?")
	}

	return models.Success(OpHotelPayment, "hotel payment summary ready", map[string]interface{}{
		"hotel":         st.Selection.Name,
		"city":          st.Selection.City,
		"checkIn":       *st.CheckIn,
		"checkOut":      *st.CheckOut,
		"nights":        s.hotelNights(st),
		"rooms":         *st.Rooms,
		"paymentMethod": *st.PaymentMethod,
		"totalPrice":    s.hotelTotal(st),
		"currency":      s.currencyOr(st.Selection.Currency),
	})
}

func (s *DefaultAssistantService) hotelConfirm(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Hotel
	if st.Selection == nil || st.PaymentMethod == nil {
		return models.Error(OpHotelConfirm, "select a hotel and a payment method before confirming")
	}

	return s.commit(ctx, sess, args.Confirm, commitRequest{
		step:        OpHotelConfirm,
		bookingType: string(models.FlowHotel),
		itemID:      st.Selection.ID,
		details: map[string]interface{}{
			"hotel":         st.Selection.Name,
			"city":          st.Selection.City,
			"stars":         st.Selection.Stars,
			"nights":        s.hotelNights(st),
			"rooms":         *st.Rooms,
			"paymentMethod": *st.PaymentMethod,
		},
		total:     s.hotelTotal(st),
		currency:  s.currencyOr(st.Selection.Currency),
		startDate: *st.CheckIn,
		endDate:   *st.CheckOut,
		prompt:    "shall I confirm the hotel booking?",
		confirmed: &st.Confirmed,
		bookingID: &st.BookingID,
	})
}

// hotelNights counts the nights between the canonical check-in and check-out dates.
func (s *DefaultAssistantService) hotelNights(st *models.HotelState) int {
	checkIn, errIn := time.Parse(normalize.DateLayout, *st.CheckIn)
	checkOut, errOut := time.Parse(normalize.DateLayout, *st.CheckOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// hotelTotal is always derived from the current selection, nights and room count.
func (s *DefaultAssistantService) hotelTotal(st *models.HotelState) float64 {
	return st.Selection.PricePerNight * float64(s.hotelNights(st)) * float64(*st.Rooms)
}
