package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
)

// ErrNotFound is returned when a document lookup matches nothing.
var ErrNotFound = fmt.Errorf("repositories: not found")

// ProductRepository handles database operations for Product and
// OfflineProduct. Both collections share the Product shape; the caller
// names the collection a write should land in.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Insert persists a new product into the named collection and returns it
// with its assigned ID and timestamps.
func (r *ProductRepository) Insert(ctx context.Context, collection string, p *models.Product) (*models.Product, error) {
	col, err := database.Collection(collection)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := col.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("products: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// All returns every product in the standard collection.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	col, err := database.Collection(models.ProductCollection)
	if err != nil {
		return nil, err
	}

	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

// FindByID looks up one product in the standard collection.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, ErrNotFound
	}

	col, err := database.Collection(models.ProductCollection)
	if err != nil {
		return product, err
	}

	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return product, ErrNotFound
	}
	if err != nil {
		return product, fmt.Errorf("products: find %s: %w", id, err)
	}
	return product, nil
}

// Update applies fields to the product with the given id and returns the
// updated document.
func (r *ProductRepository) Update(ctx context.Context, id string, fields bson.M) (models.Product, error) {
	var product models.Product

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, ErrNotFound
	}

	col, err := database.Collection(models.ProductCollection)
	if err != nil {
		return product, err
	}

	fields["updatedAt"] = time.Now().UTC()

	after := options.After
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return product, ErrNotFound
	}
	if err != nil {
		return product, fmt.Errorf("products: update %s: %w", id, err)
	}
	return product, nil
}
