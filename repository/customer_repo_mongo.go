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

type MongoCustomerRepo struct {
	DB *mongo.Client
}

func NewMongoCustomerRepo(db *mongo.Client) *MongoCustomerRepo {
	return &MongoCustomerRepo{DB: db}
}

func (r *MongoCustomerRepo) CreateCustomer(customer *models.Customer) error {
	ctx := context.Background()
	if customer.ID == "" {
		customer.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now

	_, err := r.DB.Database("aspcranes").Collection("customers").InsertOne(ctx, customer)
	return err
}

func (r *MongoCustomerRepo) GetCustomers() ([]*models.Customer, error) {
	ctx := context.Background()
	cur, err := r.DB.Database("aspcranes").Collection("customers").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Customer
	for cur.Next(ctx) {
		var c models.Customer
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *MongoCustomerRepo) GetCustomerByID(id string) (*models.Customer, error) {
	ctx := context.Background()
	customer := &models.Customer{}

	err := r.DB.Database("aspcranes").Collection("customers").
		FindOne(ctx, bson.M{"_id": id}).Decode(customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

func (r *MongoCustomerRepo) UpdateCustomer(customer *models.Customer) error {
	ctx := context.Background()
	customer.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Database("aspcranes").Collection("customers").
		UpdateOne(ctx, bson.M{"_id": customer.ID}, bson.M{"$set": bson.M{
			"name":        customer.Name,
			"companyName": customer.CompanyName,
			"email":       customer.Email,
			"phone":       customer.Phone,
			"address":     customer.Address,
			"designation": customer.Designation,
			"notes":       customer.Notes,
			"updatedAt":   customer.UpdatedAt,
		}})
	return err
}

func (r *MongoCustomerRepo) DeleteCustomer(id string) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("customers").
		DeleteOne(ctx, bson.M{"_id": id})
	return err
}
