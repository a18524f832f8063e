package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
)

// CategoryRepository handles database operations for the taxonomy.
type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// ExistsByName reports whether a category with the exact name exists.
// Product creation validates its sub-category reference through this.
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	col, err := database.Collection(models.CategoryCollection)
	if err != nil {
		return false, err
	}

	err = col.FindOne(ctx, bson.M{"name": name}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("categories: lookup %q: %w", name, err)
	}
	return true, nil
}

// All returns every category.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	col, err := database.Collection(models.CategoryCollection)
	if err != nil {
		return nil, err
	}

	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("categories: find: %w", err)
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("categories: decode: %w", err)
	}
	return categories, nil
}

// Create persists a new taxonomy entry.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	col, err := database.Collection(models.CategoryCollection)
	if err != nil {
		return err
	}

	res, err := col.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("categories: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}
