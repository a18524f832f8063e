// Package database owns the process-wide MongoDB connection.
//
// The connection is established lazily on first use and reused for the
// lifetime of the process. There is no explicit teardown; the driver's
// pool is released when the process exits.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kashvi-admin/config"
)

var (
	connectOnce sync.Once
	connectErr  error

	client *mongo.Client
	db     *mongo.Database
)

// Connect establishes the MongoDB connection if it does not exist yet.
// Safe to call from every request path; only the first call does work.
func Connect() error {
	connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Client().
			ApplyURI(config.MongoURI()).
			SetConnectTimeout(5 * time.Second).
			SetServerSelectionTimeout(5 * time.Second)

		c, err := mongo.Connect(ctx, opts)
		if err != nil {
			connectErr = fmt.Errorf("database: connect: %w", err)
			return
		}

		if err := c.Ping(ctx, nil); err != nil {
			_ = c.Disconnect(context.Background())
			connectErr = fmt.Errorf("database: ping: %w", err)
			return
		}

		client = c
		db = c.Database(config.MongoDB())
	})
	return connectErr
}

// DB returns the application database handle, connecting on first use.
func DB() (*mongo.Database, error) {
	if err := Connect(); err != nil {
		return nil, err
	}
	return db, nil
}

// Collection returns a handle to the named collection, connecting on first use.
func Collection(name string) (*mongo.Collection, error) {
	d, err := DB()
	if err != nil {
		return nil, err
	}
	return d.Collection(name), nil
}

// Client exposes the raw client for index bootstrap and the log sink.
func Client() (*mongo.Client, error) {
	if err := Connect(); err != nil {
		return nil, err
	}
	return client, nil
}
