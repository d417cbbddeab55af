package repository

import (
	"context"
	"fmt"

	"splendico/pkg/config"
	mongodb "splendico/pkg/db/mongo"
	"splendico/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "reviews"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByRoom(ctx context.Context, roomID string) ([]*model.Review, error)
	FindRecent(ctx context.Context, limit int64) ([]*model.Review, error)
}

type mongoReviewRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoReviewRepository(cfg *config.Config) ReviewRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReviewRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *model.Review) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid.Hex()
	}
	return nil
}

// FindByRoom matches roomId as stored: the hex string the client submitted.
func (r *mongoReviewRepository) FindByRoom(ctx context.Context, roomID string) ([]*model.Review, error) {
	return r.find(ctx, bson.M{"roomId": roomID}, options.Find().SetSort(newestFirst()))
}

func (r *mongoReviewRepository) FindRecent(ctx context.Context, limit int64) ([]*model.Review, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(newestFirst()).SetLimit(limit))
}

func (r *mongoReviewRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Review, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*model.Review{}
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}

func newestFirst() bson.D {
	return bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}
}
