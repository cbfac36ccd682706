package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the marketplace
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"` // "buyer", "seller" or "admin"
	Verified bool               `bson:"verified" json:"verified"`
}
