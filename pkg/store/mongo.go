package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig configures the MongoDB snapshot store.
type MongoConfig struct {
	URI        string // mongodb:// connection string, required
	Database   string // optional, defaults to "figtree"
	Collection string // optional, defaults to "snapshots"
}

// MongoStore is a MongoDB-backed snapshot store for durable deployments.
// Expired documents are removed by Cleanup rather than a server-side TTL
// index, keeping the store usable without index management rights.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo URI is required")
	}
	if cfg.Database == "" {
		cfg.Database = "figtree"
	}
	if cfg.Collection == "" {
		cfg.Collection = "snapshots"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a snapshot by id. Expired documents are removed on read.
func (s *MongoStore) Get(ctx context.Context, id string) (*Snapshot, error) {
	var snap Snapshot
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}

	if snap.IsExpired() {
		s.coll.DeleteOne(ctx, bson.M{"_id": id})
		return nil, ErrNotFound
	}
	return &snap, nil
}

// Set stores a snapshot, replacing any document with the same id.
func (s *MongoStore) Set(ctx context.Context, snap *Snapshot) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": snap.ID}, snap,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert: %w", err)
	}
	return nil
}

// Delete removes a snapshot. Missing documents are ignored.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

// List returns all live snapshots, newest first.
func (s *MongoStore) List(ctx context.Context) ([]*Snapshot, error) {
	cur, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	var out []*Snapshot
	for cur.Next(ctx) {
		var snap Snapshot
		if err := cur.Decode(&snap); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		if snap.IsExpired() {
			continue
		}
		out = append(out, &snap)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return out, nil
}

// Cleanup removes expired snapshot documents.
func (s *MongoStore) Cleanup(ctx context.Context) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lte": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("mongo cleanup: %w", err)
	}
	return nil
}

// Close disconnects the underlying MongoDB client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
