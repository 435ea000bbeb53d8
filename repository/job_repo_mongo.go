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

type MongoJobRepo struct {
	DB *mongo.Client
}

func NewMongoJobRepo(db *mongo.Client) *MongoJobRepo {
	return &MongoJobRepo{DB: db}
}

func (r *MongoJobRepo) CreateJob(job *models.Job) error {
	ctx := context.Background()
	if job.ID == "" {
		job.ID = primitive.NewObjectID().Hex()
	}
	if job.Status == "" {
		job.Status = models.JobStatusScheduled
	}
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	_, err := r.DB.Database("aspcranes").Collection("jobs").InsertOne(ctx, job)
	return err
}

func (r *MongoJobRepo) GetJobs(filters map[string]interface{}) ([]*models.Job, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database("aspcranes").Collection("jobs").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Job
	for cur.Next(ctx) {
		var j models.Job
		if err := cur.Decode(&j); err != nil {
			return nil, err
		}
		out = append(out, &j)
	}
	return out, cur.Err()
}

func (r *MongoJobRepo) GetJobByID(id string) (*models.Job, error) {
	ctx := context.Background()
	job := &models.Job{}

	err := r.DB.Database("aspcranes").Collection("jobs").
		FindOne(ctx, bson.M{"_id": id}).Decode(job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

func (r *MongoJobRepo) UpdateJobStatus(id, status string) error {
	ctx := context.Background()
	_, err := r.DB.Database("aspcranes").Collection("jobs").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}})
	return err
}
