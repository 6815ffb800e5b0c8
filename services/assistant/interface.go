package assistant

import (
	"context"
	"math/rand"
	"sync"
	"time"

	bookingsRepo "concierge/database/repository/bookings"
	catalogRepo "concierge/database/repository/catalog"
	"concierge/models"
	"concierge/services/notification"

	"go.uber.org/zap"
)

// ToolArgs carries the named optional arguments of a tool invocation. Any subset may
// be present on a given turn; nil means the caller did not supply the field.
type ToolArgs struct {
	// Flight slots.
	FromCity      *string `json:"fromCity,omitempty"`
	ToCity        *string `json:"toCity,omitempty"`
	DepartureDate *string `json:"departureDate,omitempty"`
	TripType      *string `json:"tripType,omitempty"`
	ReturnDate    *string `json:"returnDate,omitempty"`
	Adults        *int    `json:"adults,omitempty"`
	Kids          *int    `json:"kids,omitempty"`
	CabinClass    *string `json:"cabinClass,omitempty"`

	// Food slots.
	Cuisine  *string `json:"cuisine,omitempty"`
	Area     *string `json:"area,omitempty"`
	Item     *string `json:"item,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`

	// Ride slots.
	Pickup      *string `json:"pickup,omitempty"`
	Destination *string `json:"destination,omitempty"`
	RideType    *string `json:"rideType,omitempty"`
	Passengers  *int    `json:"passengers,omitempty"`

	// Hotel slots.
	City     *string `json:"city,omitempty"`
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	Rooms    *int    `json:"rooms,omitempty"`

	// Shared across flows.
	Choice        *string `json:"choice,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Confirm       *bool   `json:"confirm,omitempty"`
}

// AssistantService is the tool-call boundary the voice runtime invokes. Every
// operation returns the uniform result envelope; nothing panics across this boundary.
type AssistantService interface {
	HandleTool(ctx context.Context, sessionID, op string, args ToolArgs) models.ToolResult
	EndSession(sessionID string)
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingsRepo.BookingRepository
	Notifier notification.NotificationService
	Sessions *SessionStore
	Logger   *zap.Logger

	// DeliveryFee is the flat fee added to every food order subtotal.
	DeliveryFee float64
	// Currency is the fallback when a catalog row carries none.
	Currency string
	// QueryTimeout bounds every backend query made during one tool invocation.
	QueryTimeout time.Duration

	// Now and Distance are injectable for tests.
	Now      func() time.Time
	Distance func() int

	citiesMu sync.RWMutex
	cities   []models.City
}

// NewAssistantService wires an assistant with production defaults.
func NewAssistantService(
	catalog catalogRepo.CatalogRepository,
	bookings bookingsRepo.BookingRepository,
	notifier notification.NotificationService,
	logger *zap.Logger,
	deliveryFee float64,
	currency string,
) *DefaultAssistantService {
	return &DefaultAssistantService{
		Catalog:      catalog,
		Bookings:     bookings,
		Notifier:     notifier,
		Sessions:     NewSessionStore(),
		Logger:       logger,
		DeliveryFee:  deliveryFee,
		Currency:     currency,
		QueryTimeout: 10 * time.Second,
		Now:          time.Now,
		Distance:     func() int { return 5 + rand.Intn(16) }, // 5-20 km, as dispatch estimates go
	}
}

// EndSession discards a conversation's transient state.
func (s *DefaultAssistantService) EndSession(sessionID string) {
	s.Sessions.Delete(sessionID)
}

// loadCities fetches and memoizes the city reference list used for fuzzy resolution.
func (s *DefaultAssistantService) loadCities(ctx context.Context) ([]models.City, error) {
	s.citiesMu.RLock()
	cached := s.cities
	s.citiesMu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	cities, err := s.Catalog.Cities(ctx)
	if err != nil {
		return nil, err
	}
	s.citiesMu.Lock()
	s.cities = cities
	s.citiesMu.Unlock()
	return cities, nil
}

// publish sends a display event without ever failing the dialogue turn.
func (s *DefaultAssistantService) publish(ctx context.Context, event string, payload interface{}) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Publish(ctx, event, payload); err != nil {
		s.Logger.Warn("failed to publish assistant event",
			zap.String("event", event), zap.Error(err))
	}
}

func (s *DefaultAssistantService) currencyOr(c string) string {
	if c != "" {
		return c
	}
	return s.Currency
}
