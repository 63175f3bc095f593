package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountDocument is the MongoDB schema of one voting account. Admin
// accounts carry no assignedRegion.
type AccountDocument struct {
	ID              primitive.ObjectID  `bson:"_id"`
	Email           string              `bson:"email"`
	PasswordHash    string              `bson:"passwordHash"`
	AgreedTerms     bool                `bson:"agreedTerms"`
	IsCompleted     bool                `bson:"isCompleted"`
	IsAdmin         bool                `bson:"isAdmin,omitempty"`
	AssignedRegion  *primitive.ObjectID `bson:"assignedRegion,omitempty"`
	LastVisitedPage string              `bson:"lastVisitedPage,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt"`
}

// RegionDocument stores one award region with its embedded city list.
type RegionDocument struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	Blurb    string             `bson:"blurb,omitempty"`
	ImageURL string             `bson:"imageURL,omitempty"`
	Cities   []CityDocument     `bson:"cities"`
}

// CityDocument is an embedded city entry inside a region.
type CityDocument struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

// RestaurantDocument stores one catalogue entry. A nil regionID marks a
// nationwide (jury-nominated national) entry.
type RestaurantDocument struct {
	ID          primitive.ObjectID  `bson:"_id"`
	Name        string              `bson:"name"`
	City        string              `bson:"city"`
	RegionID    *primitive.ObjectID `bson:"regionId,omitempty"`
	JuryCreated bool                `bson:"juryCreated,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"`
}

// SelectionDocument is the single mutable record per voter: both pick lists
// plus the working ratings keyed by restaurant id.
type SelectionDocument struct {
	AccountID primitive.ObjectID        `bson:"_id"`
	Regional  []PickDocument            `bson:"regional"`
	National  []PickDocument            `bson:"national"`
	Ratings   map[string]RatingDocument `bson:"ratings"`
	UpdatedAt time.Time                 `bson:"updatedAt"`
}

// PickDocument denormalizes the restaurant fields the selection screens
// render, so list reads need no catalogue join.
type PickDocument struct {
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
	Name         string             `bson:"name"`
	City         string             `bson:"city"`
}

// RatingDocument holds the three working scores for one picked restaurant.
type RatingDocument struct {
	Food     int `bson:"food"`
	Service  int `bson:"service"`
	Ambience int `bson:"ambience"`
}

// SubmittedRatingDocument is one write-once final rating row.
type SubmittedRatingDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	AccountID      primitive.ObjectID `bson:"accountId"`
	RestaurantID   primitive.ObjectID `bson:"restaurantId"`
	RestaurantName string             `bson:"restaurantName"`
	Food           int                `bson:"food"`
	Service        int                `bson:"service"`
	Ambience       int                `bson:"ambience"`
	SubmittedAt    time.Time          `bson:"submittedAt"`
}
