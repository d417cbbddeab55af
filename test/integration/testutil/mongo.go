package testutil

import (
	"context"
	"testing"

	bookingrepository "splendico/internal/bookings/repository"
	reviewrepository "splendico/internal/reviews/repository"
	roomrepository "splendico/internal/rooms/repository"
	"splendico/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHelper seeds and cleans the collections the server reads.
type MongoHelper struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoHelper(t *testing.T, mongoURI, dbName string) *MongoHelper {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("failed to ping MongoDB: %v", err)
	}

	return &MongoHelper{
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoHelper) Close(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		t.Logf("warning: failed to disconnect from MongoDB: %v", err)
	}
}

func (m *MongoHelper) CleanDatabase(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	for _, name := range []string{
		roomrepository.CollectionName,
		bookingrepository.CollectionName,
		reviewrepository.CollectionName,
	} {
		if _, err := m.Database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Fatalf("failed to clean %s: %v", name, err)
		}
	}
}

// SeedRooms inserts rooms with fresh ObjectIDs and returns their hex ids in
// insertion order.
func (m *MongoHelper) SeedRooms(t *testing.T, rooms ...model.Room) []string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	docs := make([]any, 0, len(rooms))
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		oid := primitive.NewObjectID()
		ids = append(ids, oid.Hex())
		docs = append(docs, bson.M{
			"_id":       oid,
			"title":     r.Title,
			"category":  r.Category,
			"price":     r.Price,
			"available": r.Available,
		})
	}

	if _, err := m.Database.Collection(roomrepository.CollectionName).InsertMany(ctx, docs); err != nil {
		t.Fatalf("failed to seed rooms: %v", err)
	}
	return ids
}
