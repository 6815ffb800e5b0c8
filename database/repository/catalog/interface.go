package catalogRepo

import (
	"context"

	"concierge/config"
	"concierge/database"
	"concierge/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository exposes the reference datasets the assistant searches against.
// Results are returned in collection order; callers treat them as immutable.
type CatalogRepository interface {
	Cities(ctx context.Context) ([]models.City, error)
	Flights(ctx context.Context, fromCity, toCity string) ([]models.Flight, error)
	Restaurants(ctx context.Context, cuisine, area string) ([]models.Restaurant, error)
	MenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	Rides(ctx context.Context, rideType string) ([]models.Ride, error)
	Hotels(ctx context.Context, city string) ([]models.Hotel, error)
}

type mongoCatalogRepo struct {
	cities      *mongo.Collection
	flights     *mongo.Collection
	restaurants *mongo.Collection
	menuItems   *mongo.Collection
	rides       *mongo.Collection
	hotels      *mongo.Collection
	cache       *redis.Client
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB. The city list is
// cached in Redis when a cache client is given; it changes rarely and every fuzzy
// resolution reads it.
func NewMongoCatalogRepo(cache *redis.Client) CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCatalogRepo{
		cities:      db.Collection("cities"),
		flights:     db.Collection("flights"),
		restaurants: db.Collection("restaurants"),
		menuItems:   db.Collection("menu_items"),
		rides:       db.Collection("rides"),
		hotels:      db.Collection("hotels"),
		cache:       cache,
	}
}
