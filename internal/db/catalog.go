package db

import (
	"context"
	"errors"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCatalog loads catalog by name, returns nil if it has never been stored
func (d *Database) GetCatalog(ctx context.Context, name string) (*model.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	result := d.catalogs.FindOne(ctx, bson.D{{Key: "_id", Value: name}})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}

	if result.Err() != nil {
		return nil, result.Err()
	}

	c := model.Catalog{}
	if err := result.Decode(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// PutCatalog creates or replaces catalog
func (d *Database) PutCatalog(ctx context.Context, c *model.Catalog) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	now := time.Now()
	c.UpdatedAt = &now

	opts := options.Replace().SetUpsert(true)
	filter := bson.D{{Key: "_id", Value: c.Name}}

	_, err := d.catalogs.ReplaceOne(ctx, filter, c, opts)
	return err
}
