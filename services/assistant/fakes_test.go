package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"concierge/models"

	"go.uber.org/zap"
)

type fakeCatalog struct {
	cities      []models.City
	flights     []models.Flight
	restaurants []models.Restaurant
	menuItems   map[string][]models.MenuItem
	rides       []models.Ride
	hotels      []models.Hotel
	failWith    error
}

func (f *fakeCatalog) Cities(ctx context.Context) ([]models.City, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.cities, nil
}

func (f *fakeCatalog) Flights(ctx context.Context, fromCity, toCity string) ([]models.Flight, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Flight
	for _, fl := range f.flights {
		if fl.FromCity == fromCity && fl.ToCity == toCity {
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Restaurants(ctx context.Context, cuisine, area string) ([]models.Restaurant, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Restaurant
	for _, r := range f.restaurants {
		if (cuisine == "" || r.Cuisine == cuisine) && (area == "" || r.Area == area) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatalog) MenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.menuItems[restaurantID], nil
}

func (f *fakeCatalog) Rides(ctx context.Context, rideType string) ([]models.Ride, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Ride
	for _, r := range f.rides {
		if r.Type == rideType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Hotels(ctx context.Context, city string) ([]models.Hotel, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Hotel
	for _, h := range f.hotels {
		if h.City == city {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeBookings struct {
	created []models.Booking
	fail    bool
}

func (f *fakeBookings) Create(ctx context.Context, booking models.Booking) (string, error) {
	if f.fail {
		return "", errors.New("store unavailable")
	}
	booking.ID = fmt.Sprintf("BK%03d", len(f.created)+1)
	f.created = append(f.created, booking)
	return booking.ID, nil
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

func (f *fakeBookings) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.created {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) Publish(ctx context.Context, event string, payload interface{}) error {
	f.events = append(f.events, event)
	return nil
}

// testNow is the fixed clock every test runs against.
var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		cities: []models.City{
			{ID: "c1", Name: "Dubai", Code: "DXB"},
			{ID: "c2", Name: "Riyadh", Code: "RUH"},
			{ID: "c3", Name: "Doha", Code: "DOH"},
		},
		flights: []models.Flight{
			{ID: "FL101", FromCity: "Dubai", ToCity: "Riyadh", FromCityCode: "DXB", ToCityCode: "RUH", Airline: "Emirates", Price: 780, Currency: "AED", DepartureTime: "08:00", ArrivalTime: "10:00", FlightDate: "2026-09-01"},
			{ID: "FL102", FromCity: "Dubai", ToCity: "Riyadh", FromCityCode: "DXB", ToCityCode: "RUH", Airline: "FlyDubai", Price: 540, Currency: "AED", DepartureTime: "13:00", ArrivalTime: "15:00", FlightDate: "2026-09-01"},
			{ID: "FL103", FromCity: "Dubai", ToCity: "Riyadh", FromCityCode: "DXB", ToCityCode: "RUH", Airline: "Saudia", Price: 410, Currency: "SAR", DepartureTime: "19:00", ArrivalTime: "21:00", FlightDate: "2026-09-01"},
			{ID: "FL201", FromCity: "Dubai", ToCity: "Doha", FromCityCode: "DXB", ToCityCode: "DOH", Airline: "Qatar Airways", Price: 620, Currency: "QAR", DepartureTime: "09:00", ArrivalTime: "10:10", FlightDate: "2026-09-01"},
		},
		restaurants: []models.Restaurant{
			{ID: "r1", Name: "Al Mallah", Cuisine: "Lebanese", Area: "Deira"},
			{ID: "r2", Name: "Operation Falafel", Cuisine: "Lebanese", Area: "Deira"},
		},
		menuItems: map[string][]models.MenuItem{
			"r1": {
				{ID: "m1", RestaurantID: "r1", Name: "Chicken Shawarma Plate", Price: 28},
				{ID: "m2", RestaurantID: "r1", Name: "Falafel Wrap", Price: 18},
			},
			"r2": {
				{ID: "m3", RestaurantID: "r2", Name: "Falafel Platter", Price: 22},
			},
		},
		rides: []models.Ride{
			{ID: "R001", Type: "Sedan", City: "Dubai", BaseFare: 12, PerKm: 3.2, Currency: "AED", Service: "Careem", Description: "Comfortable sedan"},
			{ID: "R002", Type: "Sedan", City: "Dubai", BaseFare: 10, PerKm: 3.0, Currency: "AED", Service: "Uber", Description: "Standard sedan"},
		},
		hotels: []models.Hotel{
			{ID: "H101", Name: "Grand Palace Dubai", City: "Dubai", Stars: 5, PricePerNight: 1200, Currency: "AED"},
			{ID: "H102", Name: "City Inn Dubai", City: "Dubai", Stars: 3, PricePerNight: 400, Currency: "AED"},
		},
	}
}

func newTestService(catalog *fakeCatalog, bookings *fakeBookings) *DefaultAssistantService {
	svc := NewAssistantService(catalog, bookings, &fakeNotifier{}, zap.NewNop(), 10, "AED")
	svc.Now = func() time.Time { return testNow }
	svc.Distance = func() int { return 10 }
	return svc
}

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }
func boolp(b bool) *bool    { return &b }
