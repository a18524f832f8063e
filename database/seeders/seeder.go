// Package seeders populates a fresh database with the baseline taxonomy and
// the default admin account.
package seeders

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
)

// Seed categories mirror the storefront's navigation.
var categories = []models.Category{
	{Name: "Rings", ParentCategory: "jewellery"},
	{Name: "Earrings", ParentCategory: "jewellery"},
	{Name: "Necklaces", ParentCategory: "jewellery"},
	{Name: "Bracelets", ParentCategory: "jewellery"},
	{Name: "Pendants", ParentCategory: "jewellery"},
	{Name: "Silver Rings", ParentCategory: "silver"},
	{Name: "Silver Earrings", ParentCategory: "silver"},
	{Name: "Gold Rings", ParentCategory: "gold"},
	{Name: "Gold Necklaces", ParentCategory: "gold"},
}

// Run inserts the seed data, skipping documents that already exist so the
// command is safe to re-run.
func Run(ctx context.Context) error {
	if err := seedCategories(ctx); err != nil {
		return err
	}
	return seedAdmin(ctx)
}

func seedCategories(ctx context.Context) error {
	col, err := database.Collection(models.CategoryCollection)
	if err != nil {
		return err
	}

	for _, c := range categories {
		res, err := col.UpdateOne(ctx,
			bson.M{"name": c.Name},
			bson.M{"$setOnInsert": bson.M{
				"name":           c.Name,
				"parentCategory": c.ParentCategory,
			}},
			upsert(),
		)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
		if res.UpsertedCount > 0 {
			logger.Info("seeded category", "name", c.Name)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context) error {
	col, err := database.Collection(models.UserCollection)
	if err != nil {
		return err
	}

	email := config.Get("ADMIN_EMAIL", "admin@kashvijewels.com")
	password := config.Get("ADMIN_PASSWORD", "")
	if password == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	res, err := col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$setOnInsert": bson.M{
			"name":      "Admin",
			"email":     email,
			"password":  hash,
			"isAdmin":   true,
			"createdAt": now,
			"updatedAt": now,
		}},
		upsert(),
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if res.UpsertedCount > 0 {
		logger.Info("seeded admin user", "email", email)
	}
	return nil
}

func upsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
