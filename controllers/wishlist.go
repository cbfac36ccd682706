package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/parvez1407/car-hut-server/middleware"
	"github.com/parvez1407/car-hut-server/models"
	"github.com/parvez1407/car-hut-server/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WishlistController handles wishlist-related requests
type WishlistController struct {
	Wishlists *mongo.Collection
}

// NewWishlistController creates a new WishlistController
func NewWishlistController(db *mongo.Database) *WishlistController {
	return &WishlistController{
		Wishlists: db.Collection("wishlists"),
	}
}

// AddWishlist saves a car on the buyer's wishlist. Saving the same car twice
// overwrites the existing entry instead of duplicating it.
func (wc *WishlistController) AddWishlist(w http.ResponseWriter, r *http.Request) {
	var entry models.Wishlist
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"email": entry.Email, "productId": entry.ProductID}
	opts := options.Update().SetUpsert(true)
	result, err := wc.Wishlists.UpdateOne(ctx, filter, bson.M{"$set": entry}, opts)
	if err != nil {
		http.Error(w, "Error saving wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CreateWishlist appends a wishlist entry without deduplication
func (wc *WishlistController) CreateWishlist(w http.ResponseWriter, r *http.Request) {
	var entry models.Wishlist
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := wc.Wishlists.InsertOne(ctx, entry)
	if err != nil {
		http.Error(w, "Error creating wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetWishlists retrieves the authenticated buyer's wishlist. The token email
// must match the requested email.
func (wc *WishlistController) GetWishlists(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "unauthorized access", http.StatusUnauthorized)
		return
	}

	email := mux.Vars(r)["email"]
	if claims.Email != email {
		http.Error(w, "forbidden access", http.StatusForbidden)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := wc.Wishlists.Find(ctx, bson.M{"email": email})
	if err != nil {
		http.Error(w, "Error fetching wishlists", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	wishlists := []models.Wishlist{}
	for cursor.Next(ctx) {
		var entry models.Wishlist
		if err := cursor.Decode(&entry); err != nil {
			http.Error(w, "Error decoding wishlist", http.StatusInternalServerError)
			return
		}
		wishlists = append(wishlists, entry)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading wishlists", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wishlists)
}
