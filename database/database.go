package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pratikdhikale87/Social-media/config"
)

// DB is the connected Mongo handle. It is created once at startup and
// shared by the stores; Disconnect is the matching shutdown step.
type DB struct {
	Client *mongo.Client
	Users  *mongo.Collection
	Posts  *mongo.Collection
}

// Connect dials Mongo with exponential backoff and verifies the
// connection with a ping before returning.
func Connect(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*DB, error) {
	var client *mongo.Client

	connect := func() error {
		dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		c, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.WithError(err).Warn("mongo connect failed, retrying")
			return err
		}
		if err := c.Ping(dialCtx, nil); err != nil {
			log.WithError(err).Warn("mongo ping failed, retrying")
			_ = c.Disconnect(dialCtx)
			return err
		}
		client = c
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	if err := backoff.Retry(connect, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}

	db := client.Database(cfg.MongoDB)
	log.WithField("database", cfg.MongoDB).Info("connected to MongoDB")

	return &DB{
		Client: client,
		Users:  db.Collection("users"),
		Posts:  db.Collection("posts"),
	}, nil
}

// Disconnect closes the client. Safe to call on a nil receiver.
func (db *DB) Disconnect(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
