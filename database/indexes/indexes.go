// Package indexes declares the MongoDB indexes the admin API relies on.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
)

// Ensure creates every index, tolerating ones that already exist.
func Ensure(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		models.UserCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		models.ProductCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}},
			{Keys: bson.D{{Key: "category.name", Value: 1}}},
			{Keys: bson.D{{Key: "category.type", Value: 1}}},
		},
		models.OfflineProductCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}},
		},
		models.CategoryCollection: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for name, ms := range specs {
		col, err := database.Collection(name)
		if err != nil {
			return err
		}
		created, err := col.Indexes().CreateMany(ctx, ms)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
		logger.Info("ensured indexes", "collection", name, "indexes", created)
	}
	return nil
}
