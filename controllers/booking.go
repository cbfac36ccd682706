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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingController handles booking-related requests
type BookingController struct {
	Bookings *mongo.Collection
}

// NewBookingController creates a new BookingController
func NewBookingController(db *mongo.Database) *BookingController {
	return &BookingController{
		Bookings: db.Collection("bookings"),
	}
}

// CreateBooking records a buyer's booking of a listed car
func (bc *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := bc.Bookings.InsertOne(ctx, booking)
	if err != nil {
		http.Error(w, "Error creating booking", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetBookings retrieves the authenticated buyer's bookings. The token email
// must match the requested email.
func (bc *BookingController) GetBookings(w http.ResponseWriter, r *http.Request) {
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

	cursor, err := bc.Bookings.Find(ctx, bson.M{"email": email})
	if err != nil {
		http.Error(w, "Error fetching bookings", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			http.Error(w, "Error decoding booking", http.StatusInternalServerError)
			return
		}
		bookings = append(bookings, booking)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading bookings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

// GetBookingByID retrieves a single booking by identifier
func (bc *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	err = bc.Bookings.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		// A miss on a point lookup is an empty result, not an error.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(nil)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching booking", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}
