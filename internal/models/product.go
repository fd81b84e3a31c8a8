package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product holds weak references to its category and variations: identifiers
// only, resolved at read time. Deleting a referenced category or variation
// does not touch the product.
type Product struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name" binding:"required"`
	Description string               `json:"description" bson:"description"`
	Category    primitive.ObjectID   `json:"category" bson:"category"`
	Images      []string             `json:"images" bson:"images"`
	Variations  []primitive.ObjectID `json:"variations" bson:"variations"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}

// ResolvedProduct is the read-side view of a product with its category and
// variation references replaced by the full documents. Category is nil when
// the referenced category no longer exists; missing variations are dropped.
type ResolvedProduct struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    *Category          `json:"category"`
	Images      []string           `json:"images"`
	Variations  []*Variation       `json:"variations"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
