package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VariationAttributes describes one sellable configuration of a product.
// RAM and Storage only apply to some product lines and may be empty.
type VariationAttributes struct {
	Color   string `json:"color" bson:"color" binding:"required"`
	Size    string `json:"size" bson:"size" binding:"required"`
	RAM     string `json:"ram,omitempty" bson:"ram,omitempty"`
	Storage string `json:"storage,omitempty" bson:"storage,omitempty"`
}

// Variation is referenced by products (many-to-many) and by stock records.
// Stock here is a denormalized quantity, distinct from the Stock entity.
type Variation struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Attributes VariationAttributes `json:"attributes" bson:"attributes"`
	Price      float64             `json:"price" bson:"price"`
	Stock      int                 `json:"stock" bson:"stock"`
	CreatedAt  time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at" bson:"updated_at"`
}
