package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a buyer's intent to purchase a listed car
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	ProductID     string             `bson:"productId" json:"productId"`
	ProductName   string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// Wishlist represents a single saved car on a buyer's wishlist
type Wishlist struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
}
