package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// SelectionRepository implements application.SelectionRepository using
// MongoDB. One document per account, replaced wholesale on every save so the
// lists and ratings stay consistent with each other.
type SelectionRepository struct {
	collection *mongo.Collection
}

// NewSelectionRepository creates a Mongo-backed selection repository.
func NewSelectionRepository(db *mongo.Database, collectionName string) *SelectionRepository {
	return &SelectionRepository{collection: db.Collection(collectionName)}
}

func (r *SelectionRepository) FindByAccount(ctx context.Context, accountID string) (*domain.Selection, error) {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var doc SelectionDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapSelectionDocument(doc), nil
}

func (r *SelectionRepository) Save(ctx context.Context, selection *domain.Selection) error {
	objectID, err := primitive.ObjectIDFromHex(selection.AccountID)
	if err != nil {
		return domain.ErrNotFound
	}

	regional, err := mapPicks(selection.Regional)
	if err != nil {
		return err
	}
	national, err := mapPicks(selection.National)
	if err != nil {
		return err
	}

	doc := SelectionDocument{
		AccountID: objectID,
		Regional:  regional,
		National:  national,
		Ratings:   make(map[string]RatingDocument, len(selection.Ratings)),
		UpdatedAt: time.Now().UTC(),
	}
	for id, rating := range selection.Ratings {
		doc.Ratings[id] = RatingDocument{Food: rating.Food, Service: rating.Service, Ambience: rating.Ambience}
	}

	opts := options.Replace().SetUpsert(true)
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, doc, opts)
	return err
}

// mapPicks refuses malformed ids rather than dropping the pick; a save must
// either persist every pick the caller holds or fail as a whole.
func mapPicks(picks []domain.RestaurantPick) ([]PickDocument, error) {
	docs := make([]PickDocument, 0, len(picks))
	for _, p := range picks {
		id, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("map pick %q: %w", p.ID, err)
		}
		docs = append(docs, PickDocument{RestaurantID: id, Name: p.Name, City: p.City})
	}
	return docs, nil
}

func mapSelectionDocument(doc SelectionDocument) *domain.Selection {
	selection := domain.NewSelection(doc.AccountID.Hex())
	selection.Regional = mapPickDocuments(doc.Regional)
	selection.National = mapPickDocuments(doc.National)
	selection.UpdatedAt = doc.UpdatedAt
	for id, rating := range doc.Ratings {
		selection.Ratings[id] = domain.Rating{Food: rating.Food, Service: rating.Service, Ambience: rating.Ambience}
	}
	return selection
}

func mapPickDocuments(docs []PickDocument) []domain.RestaurantPick {
	picks := make([]domain.RestaurantPick, 0, len(docs))
	for _, d := range docs {
		picks = append(picks, domain.RestaurantPick{ID: d.RestaurantID.Hex(), Name: d.Name, City: d.City})
	}
	return picks
}
