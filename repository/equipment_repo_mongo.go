package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aspcranes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoEquipmentRepo struct {
	DB *mongo.Client
}

func NewMongoEquipmentRepo(db *mongo.Client) *MongoEquipmentRepo {
	return &MongoEquipmentRepo{DB: db}
}

func (r *MongoEquipmentRepo) CreateEquipment(equipment *models.Equipment) error {
	ctx := context.Background()
	db := r.DB.Database("aspcranes")

	if equipment.ID == "" {
		equipment.ID = primitive.NewObjectID().Hex()
	}
	if equipment.EquipmentCode == "" {
		count, err := db.Collection("equipment").CountDocuments(ctx, bson.M{})
		if err != nil {
			return err
		}
		equipment.EquipmentCode = fmt.Sprintf("EQ%04d", count+1)
	}
	if equipment.Status == "" {
		equipment.Status = models.EquipmentStatusAvailable
	}
	now := time.Now().UTC()
	if equipment.CreatedAt.IsZero() {
		equipment.CreatedAt = now
	}
	equipment.UpdatedAt = now

	_, err := db.Collection("equipment").InsertOne(ctx, equipment)
	return err
}

func (r *MongoEquipmentRepo) GetEquipment(filters map[string]interface{}) ([]*models.Equipment, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database("aspcranes").Collection("equipment").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.D{{Key: "equipmentCode", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Equipment
	for cur.Next(ctx) {
		var e models.Equipment
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}

func (r *MongoEquipmentRepo) GetEquipmentByID(id string) (*models.Equipment, error) {
	ctx := context.Background()
	equipment := &models.Equipment{}

	err := r.DB.Database("aspcranes").Collection("equipment").
		FindOne(ctx, bson.M{"_id": id}).Decode(equipment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return equipment, nil
}

func (r *MongoEquipmentRepo) UpdateEquipment(equipment *models.Equipment) error {
	ctx := context.Background()
	equipment.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Database("aspcranes").Collection("equipment").
		UpdateOne(ctx, bson.M{"_id": equipment.ID}, bson.M{"$set": bson.M{
			"name":               equipment.Name,
			"category":           equipment.Category,
			"description":        equipment.Description,
			"baseRates":          equipment.BaseRates,
			"runningCostPerKm":   equipment.RunningCostPerKm,
			"maxLiftingCapacity": equipment.MaxLiftingCapacity,
			"unladenWeight":      equipment.UnladenWeight,
			"status":             equipment.Status,
			"updatedAt":          equipment.UpdatedAt,
		}})
	return err
}
