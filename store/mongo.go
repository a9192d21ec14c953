package store

import (
	"context"
	"fmt"

	"guestbook/config"
	"guestbook/logger"
	"guestbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client          *mongo.Client
	submissionsColl *mongo.Collection
)

// Init connects to MongoDB, pings, ensures indexes and prepares collections.
func Init(ctx context.Context) error {
	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	submissionsColl = client.Database(config.MongoDB).Collection("submissions")
	if err := ensureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	logger.Info("mongo initialized", logger.FieldKV("uri", config.MongoURI))
	return nil
}

// Close disconnects the client.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping health check.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return client.Ping(ctx, readpref.Primary())
}

// InsertSubmission appends one record. Records are never updated or deleted.
func InsertSubmission(ctx context.Context, sub models.Submission) error {
	if submissionsColl == nil {
		return fmt.Errorf("submissions collection not initialized")
	}
	_, err := submissionsColl.InsertOne(ctx, sub)
	return err
}

// RecentSubmissions returns up to limit submissions, newest first.
func RecentSubmissions(ctx context.Context, limit int64) ([]models.Submission, error) {
	if submissionsColl == nil {
		return nil, fmt.Errorf("submissions collection not initialized")
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cur, err := submissionsColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Submission
	for cur.Next(ctx) {
		var sub models.Submission
		if err := cur.Decode(&sub); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, cur.Err()
}

func ensureIndexes(ctx context.Context) error {
	if submissionsColl == nil {
		return fmt.Errorf("submissions collection not initialized")
	}
	// Descending timestamp index backs the newest-first listing query.
	_, err := submissionsColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}, Options: options.Index().SetName("idx_timestamp_desc")},
	})
	return err
}
