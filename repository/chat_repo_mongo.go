package repository

import (
	"context"
	"time"

	"aspcranes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoChatRepo struct {
	DB *mongo.Client
}

func NewMongoChatRepo(db *mongo.Client) *MongoChatRepo {
	return &MongoChatRepo{DB: db}
}

func (r *MongoChatRepo) SaveMessage(message *models.ChatMessage) error {
	ctx := context.Background()
	if message.ID == "" {
		message.ID = primitive.NewObjectID().Hex()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	_, err := r.DB.Database("aspcranes").Collection("chat_history").InsertOne(ctx, message)
	return err
}

func (r *MongoChatRepo) GetHistory(userID, sessionID string, limit int) ([]*models.ChatMessage, error) {
	ctx := context.Background()

	filter := bson.M{"userId": userID}
	if sessionID != "" {
		filter["sessionId"] = sessionID
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.DB.Database("aspcranes").Collection("chat_history").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var newestFirst []*models.ChatMessage
	for cur.Next(ctx) {
		var m models.ChatMessage
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		newestFirst = append(newestFirst, &m)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	// Query newest-first to honor the limit, hand back oldest-first.
	out := make([]*models.ChatMessage, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		out = append(out, newestFirst[i])
	}
	return out, nil
}
