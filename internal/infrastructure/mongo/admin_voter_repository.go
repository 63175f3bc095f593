package mongo

import (
	"context"
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

// AdminVoterRepository implements the admin application's VoterRepository.
// Every query excludes admin accounts.
type AdminVoterRepository struct {
	collection *mongo.Collection
}

// NewAdminVoterRepository creates a Mongo-backed admin voter repository.
func NewAdminVoterRepository(db *mongo.Database, collectionName string) *AdminVoterRepository {
	return &AdminVoterRepository{collection: db.Collection(collectionName)}
}

func (r *AdminVoterRepository) List(ctx context.Context, search string) ([]admindomain.Voter, error) {
	mongoFilter := bson.M{"isAdmin": bson.M{"$ne": true}}
	if search != "" {
		mongoFilter["email"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}

	cursor, err := r.collection.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	voters := make([]admindomain.Voter, 0)
	for cursor.Next(ctx) {
		var doc AccountDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		voters = append(voters, admindomain.Voter{
			ID:              doc.ID.Hex(),
			Email:           doc.Email,
			AgreedTerms:     doc.AgreedTerms,
			IsCompleted:     doc.IsCompleted,
			LastVisitedPage: doc.LastVisitedPage,
			CreatedAt:       doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(voters, func(i, j int) bool {
		return voters[i].Email < voters[j].Email
	})
	return voters, nil
}

func (r *AdminVoterRepository) Exists(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID, "isAdmin": bson.M{"$ne": true}})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AdminVoterRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"isAdmin": bson.M{"$ne": true}})
}
