package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Database struct {
	cli      *mongo.Client
	db       *mongo.Database
	catalogs *mongo.Collection
	meta     *mongo.Collection
}

const databaseTimeout = 40 * time.Second

// Version is a current schema version of the database
const Version = 1

// Connect creates database connection
func Connect(uri string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), databaseTimeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	if err = cli.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	gallery := cli.Database("gallery")
	db := &Database{
		cli:      cli,
		db:       gallery,
		catalogs: gallery.Collection("catalogs"),
		meta:     gallery.Collection("meta"),
	}

	return db, nil
}

// Close disconnects from the database
func (d *Database) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), databaseTimeout)
	defer cancel()
	return d.cli.Disconnect(ctx)
}
