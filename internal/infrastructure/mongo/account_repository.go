package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// AccountRepository implements application.AccountRepository using MongoDB.
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository creates a Mongo-backed account repository.
func NewAccountRepository(db *mongo.Database, collectionName string) *AccountRepository {
	return &AccountRepository{collection: db.Collection(collectionName)}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var doc AccountDocument
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	account := mapAccountDocument(doc)
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var doc AccountDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	account := mapAccountDocument(doc)
	return &account, nil
}

func (r *AccountRepository) SetAgreedTerms(ctx context.Context, id string, agreed bool) error {
	return r.setFields(ctx, id, bson.M{"agreedTerms": agreed})
}

func (r *AccountRepository) SetLastVisitedPage(ctx context.Context, id, path string) error {
	return r.setFields(ctx, id, bson.M{"lastVisitedPage": path})
}

func (r *AccountRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	return r.setFields(ctx, id, bson.M{"isCompleted": completed})
}

func (r *AccountRepository) setFields(ctx context.Context, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	fields["updatedAt"] = time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapAccountDocument(doc AccountDocument) domain.Account {
	assignedRegion := ""
	if doc.AssignedRegion != nil {
		assignedRegion = doc.AssignedRegion.Hex()
	}
	return domain.Account{
		ID:              doc.ID.Hex(),
		Email:           doc.Email,
		PasswordHash:    doc.PasswordHash,
		AgreedTerms:     doc.AgreedTerms,
		IsCompleted:     doc.IsCompleted,
		IsAdmin:         doc.IsAdmin,
		AssignedRegion:  assignedRegion,
		LastVisitedPage: doc.LastVisitedPage,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
