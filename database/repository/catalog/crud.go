package catalogRepo

import (
	"context"
	"encoding/json"
	"time"

	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	citiesCacheKey = "catalog:cities"
	citiesCacheTTL = 12 * time.Hour
)

// Cities returns every backend-known city with its code, served from the Redis cache
// when warm. A corrupt or missing cache entry falls through to Mongo.
func (r *mongoCatalogRepo) Cities(ctx context.Context) ([]models.City, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, citiesCacheKey).Result(); err == nil {
			var cities []models.City
			if err := json.Unmarshal([]byte(raw), &cities); err == nil {
				return cities, nil
			}
		}
	}

	cursor, err := r.cities.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cities []models.City
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, err
	}

	if r.cache != nil {
		if raw, err := json.Marshal(cities); err == nil {
			r.cache.Set(ctx, citiesCacheKey, raw, citiesCacheTTL)
		}
	}
	return cities, nil
}

// Flights returns the flights on the given route.
func (r *mongoCatalogRepo) Flights(ctx context.Context, fromCity, toCity string) ([]models.Flight, error) {
	cursor, err := r.flights.Find(ctx, bson.M{"fromCity": fromCity, "toCity": toCity})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flights []models.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// Restaurants returns restaurants filtered by cuisine and area. Empty filters match
// everything.
func (r *mongoCatalogRepo) Restaurants(ctx context.Context, cuisine, area string) ([]models.Restaurant, error) {
	filter := bson.M{}
	if cuisine != "" {
		filter["cuisine"] = cuisine
	}
	if area != "" {
		filter["area"] = area
	}
	cursor, err := r.restaurants.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// MenuItems returns a restaurant's menu.
func (r *mongoCatalogRepo) MenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	cursor, err := r.menuItems.Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Rides returns the ride offerings of the given type.
func (r *mongoCatalogRepo) Rides(ctx context.Context, rideType string) ([]models.Ride, error) {
	cursor, err := r.rides.Find(ctx, bson.M{"type": rideType})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rides []models.Ride
	if err := cursor.All(ctx, &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

// Hotels returns the hotels in the given city.
func (r *mongoCatalogRepo) Hotels(ctx context.Context, city string) ([]models.Hotel, error) {
	cursor, err := r.hotels.Find(ctx, bson.M{"city": city})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}
