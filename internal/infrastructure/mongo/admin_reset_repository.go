package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

// AdminResetRepository implements the admin application's ResetRepository.
// It touches three collections: accounts, submitted ratings and selections.
type AdminResetRepository struct {
	accounts    *mongo.Collection
	submissions *mongo.Collection
	selections  *mongo.Collection
}

// NewAdminResetRepository creates a Mongo-backed reset repository.
func NewAdminResetRepository(db *mongo.Database, accountColl, submissionColl, selectionColl string) *AdminResetRepository {
	return &AdminResetRepository{
		accounts:    db.Collection(accountColl),
		submissions: db.Collection(submissionColl),
		selections:  db.Collection(selectionColl),
	}
}

func (r *AdminResetRepository) ResetAccount(ctx context.Context, accountID string) error {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return admindomain.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"agreedTerms":     false,
		"isCompleted":     false,
		"lastVisitedPage": "/terms",
		"updatedAt":       time.Now().UTC(),
	}}
	result, err := r.accounts.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return admindomain.ErrNotFound
	}
	return nil
}

func (r *AdminResetRepository) DeleteSubmittedRatings(ctx context.Context, accountID string) error {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return admindomain.ErrNotFound
	}
	_, err = r.submissions.DeleteMany(ctx, bson.M{"accountId": objectID})
	return err
}

func (r *AdminResetRepository) ClearSelection(ctx context.Context, accountID string) error {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return admindomain.ErrNotFound
	}
	_, err = r.selections.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
