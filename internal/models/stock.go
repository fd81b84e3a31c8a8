package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stock tracks quantity for one product/variation pair. Nothing prevents
// several records for the same pair; lookups return the first match.
type Stock struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Product   primitive.ObjectID `json:"product" bson:"product"`
	Variation primitive.ObjectID `json:"variation" bson:"variation"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
