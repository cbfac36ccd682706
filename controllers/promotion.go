package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/parvez1407/car-hut-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PromotionController handles advertised-product requests
type PromotionController struct {
	Promotions *mongo.Collection
}

// NewPromotionController creates a new PromotionController
func NewPromotionController(db *mongo.Database) *PromotionController {
	return &PromotionController{
		Promotions: db.Collection("promotions"),
	}
}

// CreatePromotion advertises a listed car
func (prc *PromotionController) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var promotion models.Promotion
	if err := json.NewDecoder(r.Body).Decode(&promotion); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := prc.Promotions.InsertOne(ctx, promotion)
	if err != nil {
		http.Error(w, "Error creating promotion", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetPromotions retrieves all advertised cars
func (prc *PromotionController) GetPromotions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := prc.Promotions.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching promotions", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	promotions := []models.Promotion{}
	for cursor.Next(ctx) {
		var promotion models.Promotion
		if err := cursor.Decode(&promotion); err != nil {
			http.Error(w, "Error decoding promotion", http.StatusInternalServerError)
			return
		}
		promotions = append(promotions, promotion)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading promotions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(promotions)
}
