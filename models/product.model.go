package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents static reference data for car categories
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
	Img  string             `bson:"img,omitempty" json:"img,omitempty"`
}

// Product represents a car listed for resale by a seller
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	CategoryID    string             `bson:"categoryId" json:"categoryId"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	SealingPrice  float64            `bson:"sealingPrice" json:"sealingPrice"`
	YearsOfUse    string             `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	PostedAt      string             `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
	SellerName    string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	SellerEmail   string             `bson:"sellerEmail" json:"sellerEmail"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	Verified      bool               `bson:"verified" json:"verified"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
