package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/3cctech/restaurant-awards-services/api/internal/config"
	mongodoc "github.com/3cctech/restaurant-awards-services/api/internal/infrastructure/mongo"
)

type seedOptions struct {
	voterCount      int
	voterPassword   string
	adminEmail      string
	adminPassword   string
	dropCollections bool
}

type regionSeed struct {
	name   string
	blurb  string
	cities []string
}

type restaurantSeed struct {
	name   string
	city   string
	region string
}

var regionSeeds = []regionSeed{
	{
		name:   "North",
		blurb:  "Mughlai kitchens, roadside dhabas and the tandoors of the capital.",
		cities: []string{"Delhi", "Jaipur", "Lucknow", "Amritsar"},
	},
	{
		name:   "South",
		blurb:  "Filter coffee country, from Chettinad spice to coastal Kerala.",
		cities: []string{"Bengaluru", "Chennai", "Hyderabad", "Kochi"},
	},
	{
		name:   "East",
		blurb:  "Sweet shops of Bengal and the river fish of the delta.",
		cities: []string{"Kolkata", "Bhubaneswar", "Guwahati", "Patna"},
	},
	{
		name:   "West",
		blurb:  "Irani cafes, coastal Konkan seafood and Gujarati thalis.",
		cities: []string{"Mumbai", "Pune", "Ahmedabad", "Panaji"},
	},
}

var restaurantSeeds = []restaurantSeed{
	{name: "Karim's", city: "Delhi", region: "North"},
	{name: "Indian Accent", city: "Delhi", region: "North"},
	{name: "Laxmi Misthan Bhandar", city: "Jaipur", region: "North"},
	{name: "Tunday Kababi", city: "Lucknow", region: "North"},
	{name: "Kesar Da Dhaba", city: "Amritsar", region: "North"},
	{name: "Karavalli", city: "Bengaluru", region: "South"},
	{name: "MTR 1924", city: "Bengaluru", region: "South"},
	{name: "Dakshin", city: "Chennai", region: "South"},
	{name: "Paradise Biryani", city: "Hyderabad", region: "South"},
	{name: "Dhe Puttu", city: "Kochi", region: "South"},
	{name: "6 Ballygunge Place", city: "Kolkata", region: "East"},
	{name: "Arsalan", city: "Kolkata", region: "East"},
	{name: "Dalma", city: "Bhubaneswar", region: "East"},
	{name: "Paradise Restaurant", city: "Guwahati", region: "East"},
	{name: "Bansi Sweets", city: "Patna", region: "East"},
	{name: "Trishna", city: "Mumbai", region: "West"},
	{name: "Britannia & Co", city: "Mumbai", region: "West"},
	{name: "Malaka Spice", city: "Pune", region: "West"},
	{name: "Agashiye", city: "Ahmedabad", region: "West"},
	{name: "Ritz Classic", city: "Panaji", region: "West"},
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	database := client.Database(cfg.MongoDatabase)
	regions := database.Collection(cfg.RegionCollection)
	restaurants := database.Collection(cfg.RestaurantCollection)
	accounts := database.Collection(cfg.AccountCollection)

	if opts.dropCollections {
		for _, name := range []string{
			cfg.RegionCollection,
			cfg.RestaurantCollection,
			cfg.AccountCollection,
			cfg.SelectionCollection,
			cfg.SubmittedRatingCollection,
		} {
			if err := database.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("drop %s: %v", name, err)
			}
		}
		log.Println("dropped existing collections")
	}

	regionIDs, err := seedRegions(ctx, regions)
	if err != nil {
		log.Fatalf("seed regions: %v", err)
	}
	log.Printf("seeded %d regions", len(regionIDs))

	if err := seedRestaurants(ctx, restaurants, regionIDs); err != nil {
		log.Fatalf("seed restaurants: %v", err)
	}
	log.Printf("seeded %d restaurants", len(restaurantSeeds))

	voterCount, err := seedAccounts(ctx, accounts, regionIDs, opts)
	if err != nil {
		log.Fatalf("seed accounts: %v", err)
	}
	log.Printf("seeded %d voters and 1 admin", voterCount)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.IntVar(&opts.voterCount, "voters", 20, "number of voter accounts to create")
	flag.StringVar(&opts.voterPassword, "voter-password", "jury2026", "password shared by seeded voters")
	flag.StringVar(&opts.adminEmail, "admin-email", "admin@3cctech.com", "admin account email")
	flag.StringVar(&opts.adminPassword, "admin-password", "change-me", "admin account password")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop collections before seeding")
	flag.Parse()
	return opts
}

func seedRegions(ctx context.Context, collection *mongo.Collection) (map[string]primitive.ObjectID, error) {
	ids := make(map[string]primitive.ObjectID, len(regionSeeds))
	docs := make([]interface{}, 0, len(regionSeeds))
	for _, seed := range regionSeeds {
		doc := mongodoc.RegionDocument{
			ID:     primitive.NewObjectID(),
			Name:   seed.name,
			Blurb:  seed.blurb,
			Cities: make([]mongodoc.CityDocument, 0, len(seed.cities)),
		}
		for _, city := range seed.cities {
			doc.Cities = append(doc.Cities, mongodoc.CityDocument{ID: primitive.NewObjectID(), Name: city})
		}
		ids[seed.name] = doc.ID
		docs = append(docs, doc)
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

func seedRestaurants(ctx context.Context, collection *mongo.Collection, regionIDs map[string]primitive.ObjectID) error {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(restaurantSeeds))
	for _, seed := range restaurantSeeds {
		regionID, ok := regionIDs[seed.region]
		if !ok {
			return fmt.Errorf("unknown region %q for restaurant %q", seed.region, seed.name)
		}
		docs = append(docs, mongodoc.RestaurantDocument{
			ID:        primitive.NewObjectID(),
			Name:      seed.name,
			City:      seed.city,
			RegionID:  &regionID,
			CreatedAt: now,
		})
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}

func seedAccounts(ctx context.Context, collection *mongo.Collection, regionIDs map[string]primitive.ObjectID, opts seedOptions) (int, error) {
	now := time.Now().UTC()

	voterHash, err := bcrypt.GenerateFromPassword([]byte(opts.voterPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	regionOrder := make([]primitive.ObjectID, 0, len(regionSeeds))
	for _, seed := range regionSeeds {
		regionOrder = append(regionOrder, regionIDs[seed.name])
	}

	docs := make([]interface{}, 0, opts.voterCount+1)
	for i := 0; i < opts.voterCount; i++ {
		regionID := regionOrder[i%len(regionOrder)]
		docs = append(docs, mongodoc.AccountDocument{
			ID:             primitive.NewObjectID(),
			Email:          fmt.Sprintf("voter%02d@3cctech.com", i+1),
			PasswordHash:   string(voterHash),
			AssignedRegion: &regionID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(opts.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	docs = append(docs, mongodoc.AccountDocument{
		ID:           primitive.NewObjectID(),
		Email:        opts.adminEmail,
		PasswordHash: string(adminHash),
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return 0, err
	}

	// unique email index keeps reseeds honest
	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return opts.voterCount, err
}
