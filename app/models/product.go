package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. OfflineProduct shares the Product shape but lives in its
// own collection; which one a document lands in is decided by the "mode"
// field of the creation form.
const (
	ProductCollection        = "products"
	OfflineProductCollection = "offlineproducts"
)

// Metal is the four-value enum every product must use.
const (
	MetalSilver   = "silver"
	MetalGold     = "gold"
	MetalPlatinum = "platinum"
	MetalRoseGold = "rose gold"
)

// Metals lists the allowed metal values in declaration order.
var Metals = []string{MetalSilver, MetalGold, MetalPlatinum, MetalRoseGold}

// CategoryRef is the denormalized category reference embedded in a product.
// Name is the sub-category (a Category document's name), Type the parent
// grouping. It is validated by lookup at write time, not by a constraint.
type CategoryRef struct {
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"`
}

// Product is a catalog entry. Images are ordered; the order in which files
// arrived in the creation form is the order stored here.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SKU             string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Images          []string           `bson:"images" json:"images"`
	Video           string             `bson:"video,omitempty" json:"video,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Slug            string             `bson:"slug" json:"slug"`
	Description     string             `bson:"description,omitempty" json:"description"`
	Price           float64            `bson:"price" json:"price"`
	DiscountPrice   float64            `bson:"discountPrice" json:"discountPrice"`
	DiscountPercent int                `bson:"discountPercent" json:"discountPercent"`
	Category        CategoryRef        `bson:"category" json:"category"`
	CollectionName  []string           `bson:"collectionName,omitempty" json:"collectionName"`
	Metal           string             `bson:"metal,omitempty" json:"metal"`
	Stock           int                `bson:"stock" json:"stock"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
