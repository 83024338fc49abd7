package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/psatpute/HOA-OPs-AI/config"
)

// Mongo owns the process-wide client. It is created once at startup,
// injected into every service and closed once at shutdown.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return &Mongo{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *Mongo) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(pingCtx, nil)
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on users.email backs up the pre-insert duplicate check so two
// concurrent signups cannot both land.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	users := m.Database.Collection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique index on user email: %w", err)
	}

	for _, spec := range []struct {
		collection string
		key        string
	}{
		{"proposals", "projectId"},
		{"expenses", "projectId"},
	} {
		_, err := m.Database.Collection(spec.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.M{spec.key: 1},
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s.%s: %w", spec.collection, spec.key, err)
		}
	}

	return nil
}
