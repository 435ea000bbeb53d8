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

type MongoDealRepo struct {
	DB *mongo.Client
}

func NewMongoDealRepo(db *mongo.Client) *MongoDealRepo {
	return &MongoDealRepo{DB: db}
}

func (r *MongoDealRepo) CreateDeal(deal *models.Deal) error {
	ctx := context.Background()
	if deal.ID == "" {
		deal.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = now
	}
	deal.UpdatedAt = now

	_, err := r.DB.Database("aspcranes").Collection("deals").InsertOne(ctx, deal)
	return err
}

func (r *MongoDealRepo) GetDeals(filters map[string]interface{}) ([]*models.Deal, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database("aspcranes").Collection("deals").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Deal
	for cur.Next(ctx) {
		var d models.Deal
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

func (r *MongoDealRepo) GetDealByLead(leadID string) (*models.Deal, error) {
	ctx := context.Background()
	deal := &models.Deal{}

	err := r.DB.Database("aspcranes").Collection("deals").
		FindOne(ctx, bson.M{"leadId": leadID},
			options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})).Decode(deal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return deal, nil
}

func (r *MongoDealRepo) UpdateDealValueByLead(leadID string, value float64) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("deals").
		UpdateOne(ctx, bson.M{"leadId": leadID}, bson.M{"$set": bson.M{
			"value":     value,
			"updatedAt": time.Now().UTC(),
		}})
	return err
}
