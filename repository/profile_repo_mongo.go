package repository

import (
	"context"
	"errors"
	"time"

	"aspcranes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProfileRepo struct {
	DB *mongo.Client
}

func NewMongoProfileRepo(db *mongo.Client) *MongoProfileRepo {
	return &MongoProfileRepo{DB: db}
}

func (r *MongoProfileRepo) SaveProfile(profile *models.CompanyProfile) error {
	ctx := context.Background()
	db := r.DB.Database("aspcranes")

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	// An ID means editing the stored letterhead, a blank one adds a fresh
	// latest row.
	if profile.ID != "" {
		_, err := db.Collection("company_profile").
			ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile, options.Replace().SetUpsert(true))
		return err
	}
	profile.ID = primitive.NewObjectID().Hex()
	_, err := db.Collection("company_profile").InsertOne(ctx, profile)
	return err
}

func (r *MongoProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	ctx := context.Background()
	db := r.DB.Database("aspcranes")

	var profile models.CompanyProfile
	err := db.Collection("company_profile").
		FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})).
		Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
