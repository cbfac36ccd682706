package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed gateway charge. Append-only.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	ProductID     string             `bson:"productId" json:"productId"`
}

// Promotion represents an advertised car shown on the home page
type Promotion struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID     string             `bson:"productId" json:"productId"`
	ProductName   string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	SealingPrice  float64            `bson:"sealingPrice,omitempty" json:"sealingPrice,omitempty"`
	SellerEmail   string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
