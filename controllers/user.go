package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/parvez1407/car-hut-server/models"
	"github.com/parvez1407/car-hut-server/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// UserController handles user-related requests
type UserController struct {
	Users        *mongo.Collection
	Products     *mongo.Collection
	EmailService *utils.EmailService
	Logger       *zap.Logger
}

// NewUserController creates a new UserController
func NewUserController(db *mongo.Database, emailService *utils.EmailService, logger *zap.Logger) *UserController {
	return &UserController{
		Users:        db.Collection("users"),
		Products:     db.Collection("products"),
		EmailService: emailService,
		Logger:       logger,
	}
}

// IssueToken hands out an access token if a user with the given email exists.
// Unknown emails get a forbidden response with an empty token field.
func (uc *UserController) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil && err != mongo.ErrNoDocuments {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err == mongo.ErrNoDocuments {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"accessToken": ""})
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"accessToken": token})
}

// UpsertUser creates or updates a user keyed by email. Fields absent from the
// request body are left untouched on an existing document.
func (uc *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var user bson.M
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil || user == nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	user["email"] = email

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	result, err := uc.Users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": user}, opts)
	if err != nil {
		http.Error(w, "Error saving user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CheckAdmin reports whether the user with the given email is an admin.
// An unknown email yields false, not an error.
func (uc *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	uc.checkRole(w, r, "admin", "isAdmin")
}

// CheckSeller reports whether the user with the given email is a seller
func (uc *UserController) CheckSeller(w http.ResponseWriter, r *http.Request) {
	uc.checkRole(w, r, "seller", "isSeller")
}

func (uc *UserController) checkRole(w http.ResponseWriter, r *http.Request, role, field string) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil && err != mongo.ErrNoDocuments {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{field: user.Role == role})
}

// GetSellers retrieves all users with the seller role
func (uc *UserController) GetSellers(w http.ResponseWriter, r *http.Request) {
	uc.listByRole(w, r, "seller")
}

// GetBuyers retrieves all users with the buyer role
func (uc *UserController) GetBuyers(w http.ResponseWriter, r *http.Request) {
	uc.listByRole(w, r, "buyer")
}

func (uc *UserController) listByRole(w http.ResponseWriter, r *http.Request, role string) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := uc.Users.Find(ctx, bson.M{"role": role})
	if err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			http.Error(w, "Error decoding user", http.StatusInternalServerError)
			return
		}
		users = append(users, user)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// DeleteUser removes a single user by identifier. Deleting a non-existent
// identifier reports a delete count of 0, not an error.
func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := uc.Users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// VerifySeller marks a seller and all of their listed products as verified.
// The two updates run in sequence with no transaction; the product-side
// outcome is logged but only the user update is acknowledged to the caller.
func (uc *UserController) VerifySeller(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"verified": true}}

	productResult, err := uc.Products.UpdateMany(ctx, bson.M{"sellerEmail": body.Email}, update)
	if err != nil {
		uc.Logger.Error("verifying seller products failed",
			zap.String("sellerEmail", body.Email),
			zap.Error(err))
	} else {
		uc.Logger.Info("seller products verified",
			zap.String("sellerEmail", body.Email),
			zap.Int64("matched", productResult.MatchedCount),
			zap.Int64("modified", productResult.ModifiedCount))
	}

	userResult, err := uc.Users.UpdateOne(ctx, bson.M{"email": body.Email}, update)
	if err != nil {
		http.Error(w, "Error verifying seller", http.StatusInternalServerError)
		return
	}
	if userResult.MatchedCount == 0 {
		uc.Logger.Warn("verification matched no user", zap.String("email", body.Email))
	}

	go func(email string) {
		if err := uc.EmailService.SendVerificationNotice(email); err != nil {
			uc.Logger.Error("failed to send verification notice",
				zap.String("email", email),
				zap.Error(err))
		}
	}(body.Email)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(userResult)
}
