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

type MongoLeadRepo struct {
	DB *mongo.Client
}

func NewMongoLeadRepo(db *mongo.Client) *MongoLeadRepo {
	return &MongoLeadRepo{DB: db}
}

func (r *MongoLeadRepo) CreateLead(lead *models.Lead) error {
	ctx := context.Background()
	if lead.ID == "" {
		lead.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now

	_, err := r.DB.Database("aspcranes").Collection("leads").InsertOne(ctx, lead)
	return err
}

func (r *MongoLeadRepo) GetLeads(filters map[string]interface{}) ([]*models.Lead, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database("aspcranes").Collection("leads").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Lead
	for cur.Next(ctx) {
		var l models.Lead
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, cur.Err()
}

func (r *MongoLeadRepo) GetLeadByID(id string) (*models.Lead, error) {
	ctx := context.Background()
	lead := &models.Lead{}

	err := r.DB.Database("aspcranes").Collection("leads").
		FindOne(ctx, bson.M{"_id": id}).Decode(lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return lead, nil
}

func (r *MongoLeadRepo) UpdateLead(lead *models.Lead) error {
	ctx := context.Background()
	lead.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Database("aspcranes").Collection("leads").
		UpdateOne(ctx, bson.M{"_id": lead.ID}, bson.M{"$set": bson.M{
			"customerId":    lead.CustomerID,
			"customerName":  lead.CustomerName,
			"companyName":   lead.CompanyName,
			"email":         lead.Email,
			"phone":         lead.Phone,
			"serviceNeeded": lead.ServiceNeeded,
			"siteLocation":  lead.SiteLocation,
			"startDate":     lead.StartDate,
			"rentalDays":    lead.RentalDays,
			"shiftTiming":   lead.ShiftTiming,
			"status":        lead.Status,
			"source":        lead.Source,
			"priority":      lead.Priority,
			"assignedTo":    lead.AssignedTo,
			"notes":         lead.Notes,
			"followupDate":  lead.FollowupDate,
			"updatedAt":     lead.UpdatedAt,
		}})
	return err
}

func (r *MongoLeadRepo) UpdateLeadStatus(id, status string) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("leads").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}})
	return err
}

func (r *MongoLeadRepo) DeleteLead(id string) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("leads").
		DeleteOne(ctx, bson.M{"_id": id})
	return err
}
