package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

// AdminRatingRepository implements the admin application's
// RatingLogRepository over the submitted ratings collection.
type AdminRatingRepository struct {
	collection  *mongo.Collection
	accountColl string
}

// NewAdminRatingRepository creates a Mongo-backed rating log repository.
// accountCollectionName is joined for the voter email column.
func NewAdminRatingRepository(db *mongo.Database, collectionName, accountCollectionName string) *AdminRatingRepository {
	return &AdminRatingRepository{collection: db.Collection(collectionName), accountColl: accountCollectionName}
}

// submittedRowDocument is the $lookup output shape.
type submittedRowDocument struct {
	SubmittedRatingDocument `bson:",inline"`
	Voter                   []struct {
		Email string `bson:"email"`
	} `bson:"voter"`
}

func (r *AdminRatingRepository) ListSubmitted(ctx context.Context) ([]admindomain.SubmittedRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         r.accountColl,
			"localField":   "accountId",
			"foreignField": "_id",
			"as":           "voter",
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "submittedAt", Value: -1},
			{Key: "restaurantName", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := make([]admindomain.SubmittedRow, 0)
	for cursor.Next(ctx) {
		var doc submittedRowDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		row := admindomain.SubmittedRow{
			AccountID:      doc.AccountID.Hex(),
			RestaurantID:   doc.RestaurantID.Hex(),
			RestaurantName: doc.RestaurantName,
			Food:           doc.Food,
			Service:        doc.Service,
			Ambience:       doc.Ambience,
			SubmittedAt:    doc.SubmittedAt,
		}
		if len(doc.Voter) > 0 {
			row.VoterEmail = doc.Voter[0].Email
		}
		rows = append(rows, row)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AdminRatingRepository) CountSubmitted(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// insightDocument is the $group output shape.
type insightDocument struct {
	RestaurantID   primitive.ObjectID `bson:"_id"`
	RestaurantName string             `bson:"restaurantName"`
	FoodAvg        float64            `bson:"foodAvg"`
	ServiceAvg     float64            `bson:"serviceAvg"`
	AmbienceAvg    float64            `bson:"ambienceAvg"`
	Submissions    int64              `bson:"submissions"`
}

func (r *AdminRatingRepository) AverageByRestaurant(ctx context.Context) ([]admindomain.RestaurantInsight, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":            "$restaurantId",
			"restaurantName": bson.M{"$first": "$restaurantName"},
			"foodAvg":        bson.M{"$avg": "$food"},
			"serviceAvg":     bson.M{"$avg": "$service"},
			"ambienceAvg":    bson.M{"$avg": "$ambience"},
			"submissions":    bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "restaurantName", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	insights := make([]admindomain.RestaurantInsight, 0)
	for cursor.Next(ctx) {
		var doc insightDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		insights = append(insights, admindomain.RestaurantInsight{
			RestaurantID:   doc.RestaurantID.Hex(),
			RestaurantName: doc.RestaurantName,
			FoodAvg:        doc.FoodAvg,
			ServiceAvg:     doc.ServiceAvg,
			AmbienceAvg:    doc.AmbienceAvg,
			Submissions:    doc.Submissions,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return insights, nil
}
