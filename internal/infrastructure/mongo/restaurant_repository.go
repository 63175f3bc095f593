package mongo

import (
	"context"
	"regexp"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/application"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// RestaurantRepository implements application.RestaurantRepository using MongoDB.
type RestaurantRepository struct {
	collection *mongo.Collection
}

// NewRestaurantRepository creates a Mongo-backed restaurant repository.
func NewRestaurantRepository(db *mongo.Database, collectionName string) *RestaurantRepository {
	return &RestaurantRepository{collection: db.Collection(collectionName)}
}

func (r *RestaurantRepository) Find(ctx context.Context, query application.CatalogueQuery) ([]domain.Restaurant, error) {
	mongoFilter := bson.M{}
	if query.RegionID != "" {
		regionID, err := primitive.ObjectIDFromHex(query.RegionID)
		if err != nil {
			return nil, domain.ErrNotFound
		}
		mongoFilter["regionId"] = regionID
	}

	cursor, err := r.collection.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	restaurants := make([]domain.Restaurant, 0)
	for cursor.Next(ctx) {
		var doc RestaurantDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, mapRestaurantDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].Name < restaurants[j].Name
	})
	return restaurants, nil
}

func (r *RestaurantRepository) Exists(ctx context.Context, name, city, regionID string) (bool, error) {
	mongoFilter := bson.M{
		"name": bson.M{"$regex": "^" + regexp.QuoteMeta(name) + "$", "$options": "i"},
		"city": city,
	}
	if regionID != "" {
		objectID, err := primitive.ObjectIDFromHex(regionID)
		if err != nil {
			return false, domain.ErrNotFound
		}
		mongoFilter["regionId"] = objectID
	} else {
		mongoFilter["regionId"] = bson.M{"$exists": false}
	}

	count, err := r.collection.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RestaurantRepository) Insert(ctx context.Context, restaurant *domain.Restaurant) error {
	doc := RestaurantDocument{
		ID:          primitive.NewObjectID(),
		Name:        restaurant.Name,
		City:        restaurant.City,
		JuryCreated: restaurant.JuryCreated,
		CreatedAt:   time.Now().UTC(),
	}
	if restaurant.RegionID != "" {
		regionID, err := primitive.ObjectIDFromHex(restaurant.RegionID)
		if err != nil {
			return domain.ErrNotFound
		}
		doc.RegionID = &regionID
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	restaurant.ID = doc.ID.Hex()
	restaurant.CreatedAt = doc.CreatedAt
	return nil
}

func mapRestaurantDocument(doc RestaurantDocument) domain.Restaurant {
	regionID := ""
	if doc.RegionID != nil {
		regionID = doc.RegionID.Hex()
	}
	return domain.Restaurant{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		City:        doc.City,
		RegionID:    regionID,
		JuryCreated: doc.JuryCreated,
		CreatedAt:   doc.CreatedAt,
	}
}
