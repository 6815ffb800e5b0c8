package models

// City is a backend-known city with its short code (used on flight routes).
type City struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Code string `bson:"code" json:"code"`
}

// Flight is one scheduled flight row from the flights collection.
type Flight struct {
	ID            string  `bson:"id" json:"id"`
	FromCity      string  `bson:"fromCity" json:"fromCity"`
	ToCity        string  `bson:"toCity" json:"toCity"`
	FromCityCode  string  `bson:"fromCityCode" json:"fromCityCode"`
	ToCityCode    string  `bson:"toCityCode" json:"toCityCode"`
	Airline       string  `bson:"airline" json:"airline"`
	Price         float64 `bson:"price" json:"price"`
	Currency      string  `bson:"currency" json:"currency"`
	DepartureTime string  `bson:"departureTime" json:"departureTime"`
	ArrivalTime   string  `bson:"arrivalTime" json:"arrivalTime"`
	FlightDate    string  `bson:"flightDate" json:"flightDate"`
}

type Restaurant struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Cuisine string `bson:"cuisine" json:"cuisine"`
	Area    string `bson:"area" json:"area"`
}

type MenuItem struct {
	ID           string  `bson:"id" json:"id"`
	RestaurantID string  `bson:"restaurantId" json:"restaurantId"`
	Name         string  `bson:"name" json:"name"`
	Price        float64 `bson:"price" json:"price"`
}

// Ride is a ride-service offering (Sedan, SUV, ...) with its fare structure.
type Ride struct {
	ID          string  `bson:"id" json:"id"`
	Type        string  `bson:"type" json:"type"`
	City        string  `bson:"city" json:"city"`
	BaseFare    float64 `bson:"baseFare" json:"baseFare"`
	PerKm       float64 `bson:"perKm" json:"perKm"`
	Currency    string  `bson:"currency" json:"currency"`
	Description string  `bson:"description" json:"description"`
	Service     string  `bson:"service" json:"service"`
}

type Hotel struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	City          string  `bson:"city" json:"city"`
	Stars         int     `bson:"stars" json:"stars"`
	PricePerNight float64 `bson:"pricePerNight" json:"pricePerNight"`
	Currency      string  `bson:"currency" json:"currency"`
}
