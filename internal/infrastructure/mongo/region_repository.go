package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// RegionRepository implements application.RegionRepository using MongoDB.
type RegionRepository struct {
	collection *mongo.Collection
}

// NewRegionRepository creates a Mongo-backed region repository.
func NewRegionRepository(db *mongo.Database, collectionName string) *RegionRepository {
	return &RegionRepository{collection: db.Collection(collectionName)}
}

func (r *RegionRepository) FindByID(ctx context.Context, id string) (*domain.Region, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var doc RegionDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	region := mapRegionDocument(doc)
	return &region, nil
}

func (r *RegionRepository) CityExists(ctx context.Context, name string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"cities.name": name})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapRegionDocument(doc RegionDocument) domain.Region {
	cities := make([]domain.City, 0, len(doc.Cities))
	for _, c := range doc.Cities {
		cities = append(cities, domain.City{ID: c.ID.Hex(), Name: c.Name})
	}
	return domain.Region{
		ID:       doc.ID.Hex(),
		Name:     doc.Name,
		Blurb:    doc.Blurb,
		ImageURL: doc.ImageURL,
		Cities:   cities,
	}
}
