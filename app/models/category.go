package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CategoryCollection = "categories"

// Category is one taxonomy entry. Name identifies the leaf (sub-category),
// ParentCategory the grouping it belongs to.
type Category struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	ParentCategory string             `bson:"parentCategory" json:"parentCategory"`
}
