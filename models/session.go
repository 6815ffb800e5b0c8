package models

// FlowKind identifies which booking journey a session is currently in.
type FlowKind string

const (
	FlowNone   FlowKind = "none"
	FlowFlight FlowKind = "flight"
	FlowFood   FlowKind = "food"
	FlowRide   FlowKind = "ride"
	FlowHotel  FlowKind = "hotel"
)

// TripOneWay / TripRoundTrip are the accepted flight trip types.
const (
	TripOneWay    = "one-way"
	TripRoundTrip = "round-trip"
)

// FlightState holds the flight flow's slots. Slot pointers are nil until the user has
// answered the corresponding question; KidsAsked distinguishes "answered zero" from
// "never asked".
type FlightState struct {
	FromCity      *City   `json:"fromCity,omitempty"`
	ToCity        *City   `json:"toCity,omitempty"`
	DepartureDate *string `json:"departureDate,omitempty"`
	TripType      *string `json:"tripType,omitempty"`
	ReturnDate    *string `json:"returnDate,omitempty"`
	Adults        *int    `json:"adults,omitempty"`
	Kids          *int    `json:"kids,omitempty"`
	KidsAsked     bool    `json:"kidsAsked"`
	CabinClass    *string `json:"cabinClass,omitempty"`

	SearchResults []Flight `json:"searchResults,omitempty"`
	Selection     *Flight  `json:"selection,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	Confirmed     bool     `json:"confirmed"`
	BookingID     string   `json:"bookingId,omitempty"`
}

// CartLine is one menu item in the food cart. Adding the same item again accumulates
// the quantity instead of appending a duplicate line.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

type FoodState struct {
	Cuisine *string `json:"cuisine,omitempty"`
	Area    *string `json:"area,omitempty"`

	SearchResults []Restaurant `json:"searchResults,omitempty"`
	Selection     *Restaurant  `json:"selection,omitempty"`
	Menu          []MenuItem   `json:"menu,omitempty"`
	Cart          []CartLine   `json:"cart,omitempty"`
	PaymentMethod *string      `json:"paymentMethod,omitempty"`
	Confirmed     bool         `json:"confirmed"`
	BookingID     string       `json:"bookingId,omitempty"`
}

type RideState struct {
	Pickup      *string `json:"pickup,omitempty"`
	Destination *string `json:"destination,omitempty"`
	RideType    *string `json:"rideType,omitempty"`
	Passengers  *int    `json:"passengers,omitempty"`
	DistanceKm  int     `json:"distanceKm,omitempty"`

	SearchResults []Ride  `json:"searchResults,omitempty"`
	Selection     *Ride   `json:"selection,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Confirmed     bool    `json:"confirmed"`
	BookingID     string  `json:"bookingId,omitempty"`
}

type HotelState struct {
	City     *string `json:"city,omitempty"`
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	Rooms    *int    `json:"rooms,omitempty"`

	SearchResults []Hotel `json:"searchResults,omitempty"`
	Selection     *Hotel  `json:"selection,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Confirmed     bool    `json:"confirmed"`
	BookingID     string  `json:"bookingId,omitempty"`
}

// Session is the per-conversation dialogue state. Exactly one flow is live at a time;
// the orchestrator resets the outgoing flow's sub-state on a switch.
type Session struct {
	ID         string      `json:"sessionId"`
	ActiveFlow FlowKind    `json:"activeFlow"`
	Flight     FlightState `json:"flight"`
	Food       FoodState   `json:"food"`
	Ride       RideState   `json:"ride"`
	Hotel      HotelState  `json:"hotel"`
}

// NewSession returns a fresh session with no active flow.
func NewSession(id string) *Session {
	return &Session{ID: id, ActiveFlow: FlowNone}
}

// ResetFlow clears every slot belonging to the given flow.
func (s *Session) ResetFlow(flow FlowKind) {
	switch flow {
	case FlowFlight:
		s.Flight = FlightState{}
	case FlowFood:
		s.Food = FoodState{}
	case FlowRide:
		s.Ride = RideState{}
	case FlowHotel:
		s.Hotel = HotelState{}
	}
}
