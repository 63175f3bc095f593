package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// SubmissionRepository implements application.SubmissionRepository using
// MongoDB. Rows are write-once; nothing here updates them.
type SubmissionRepository struct {
	collection *mongo.Collection
}

// NewSubmissionRepository creates a Mongo-backed submission repository.
func NewSubmissionRepository(db *mongo.Database, collectionName string) *SubmissionRepository {
	return &SubmissionRepository{collection: db.Collection(collectionName)}
}

func (r *SubmissionRepository) InsertAll(ctx context.Context, rows []domain.SubmittedRating) error {
	if len(rows) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		accountID, err := primitive.ObjectIDFromHex(row.AccountID)
		if err != nil {
			return domain.ErrNotFound
		}
		restaurantID, err := primitive.ObjectIDFromHex(row.RestaurantID)
		if err != nil {
			return domain.ErrNotFound
		}
		docs = append(docs, SubmittedRatingDocument{
			ID:             primitive.NewObjectID(),
			AccountID:      accountID,
			RestaurantID:   restaurantID,
			RestaurantName: row.RestaurantName,
			Food:           row.Food,
			Service:        row.Service,
			Ambience:       row.Ambience,
			SubmittedAt:    row.SubmittedAt,
		})
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
