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

type MongoQuotationRepo struct {
	DB *mongo.Client
}

func NewMongoQuotationRepo(db *mongo.Client) *MongoQuotationRepo {
	return &MongoQuotationRepo{DB: db}
}

func (r *MongoQuotationRepo) CreateQuotation(quotation *models.Quotation) error {
	ctx := context.Background()
	if quotation.ID == "" {
		quotation.ID = primitive.NewObjectID().Hex()
	}
	if quotation.Status == "" {
		quotation.Status = models.QuotationStatusDraft
	}
	if quotation.Version == 0 {
		quotation.Version = 1
	}
	now := time.Now().UTC()
	if quotation.CreatedAt.IsZero() {
		quotation.CreatedAt = now
	}
	quotation.UpdatedAt = now

	_, err := r.DB.Database("aspcranes").Collection("quotations").InsertOne(ctx, quotation)
	return err
}

func (r *MongoQuotationRepo) GetQuotations() ([]*models.Quotation, error) {
	return r.find(bson.M{})
}

func (r *MongoQuotationRepo) GetQuotationsByLead(leadID string) ([]*models.Quotation, error) {
	return r.find(bson.M{"leadId": leadID})
}

func (r *MongoQuotationRepo) GetQuotationsByCustomer(customerID string) ([]*models.Quotation, error) {
	return r.find(bson.M{"customerId": customerID})
}

func (r *MongoQuotationRepo) GetQuotationByID(id string) (*models.Quotation, error) {
	ctx := context.Background()
	quotation := &models.Quotation{}

	err := r.DB.Database("aspcranes").Collection("quotations").
		FindOne(ctx, bson.M{"_id": id}).Decode(quotation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	quotation.Normalize()
	return quotation, nil
}

// find is the shared list path; every record is normalized before return so
// all accessors surface identical defaults.
func (r *MongoQuotationRepo) find(filter bson.M) ([]*models.Quotation, error) {
	ctx := context.Background()
	cur, err := r.DB.Database("aspcranes").Collection("quotations").
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Quotation
	for cur.Next(ctx) {
		var q models.Quotation
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		q.Normalize()
		out = append(out, &q)
	}
	return out, cur.Err()
}

func (r *MongoQuotationRepo) UpdateQuotationStatus(id, status string) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("quotations").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}})
	return err
}

func (r *MongoQuotationRepo) UpdatePDFInfo(id, url string, t time.Time) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("quotations").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"pdfUrl":       url,
			"pdfCreatedAt": t,
			"updatedAt":    time.Now().UTC(),
		}})
	return err
}

func (r *MongoQuotationRepo) DeleteQuotation(id string) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("quotations").
		DeleteOne(ctx, bson.M{"_id": id})
	return err
}
