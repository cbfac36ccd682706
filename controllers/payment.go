package controllers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/parvez1407/car-hut-server/models"
	"github.com/parvez1407/car-hut-server/utils"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PaymentController handles gateway charges and payment confirmation
type PaymentController struct {
	Payments     *mongo.Collection
	Bookings     *mongo.Collection
	Products     *mongo.Collection
	Promotions   *mongo.Collection
	EmailService *utils.EmailService
	Logger       *zap.Logger
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(db *mongo.Database, emailService *utils.EmailService, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		Payments:     db.Collection("payments"),
		Bookings:     db.Collection("bookings"),
		Products:     db.Collection("products"),
		Promotions:   db.Collection("promotions"),
		EmailService: emailService,
		Logger:       logger,
	}
}

// toMinorUnits converts a price in dollars to the cent amount the gateway
// expects.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks the payment gateway for a charge intent covering
// the car's sealing price and returns the client-side confirmation secret.
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SealingPrice float64 `json:"sealingPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(toMinorUnits(body.SealingPrice)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		pc.Logger.Error("creating payment intent failed", zap.Error(err))
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": intent.ClientSecret})
}

// ConfirmPayment records a confirmed charge and fans it out: the matching
// booking and product are marked paid, and a promotion advertising the same
// product, if one exists, is marked paid as well. The four writes run in
// sequence with no transaction and no rollback; only the payment insert is
// acknowledged to the caller, the rest is logged.
func (pc *PaymentController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := pc.Payments.InsertOne(ctx, payment)
	if err != nil {
		http.Error(w, "Error recording payment", http.StatusInternalServerError)
		return
	}

	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": payment.TransactionID,
	}}

	if bookingID, err := primitive.ObjectIDFromHex(payment.BookingID); err != nil {
		pc.Logger.Warn("payment carries malformed booking id",
			zap.String("bookingId", payment.BookingID),
			zap.String("transactionId", payment.TransactionID))
	} else if res, err := pc.Bookings.UpdateOne(ctx, bson.M{"_id": bookingID}, update); err != nil {
		pc.Logger.Error("marking booking paid failed",
			zap.String("bookingId", payment.BookingID),
			zap.Error(err))
	} else if res.MatchedCount == 0 {
		pc.Logger.Warn("payment matched no booking",
			zap.String("bookingId", payment.BookingID),
			zap.String("transactionId", payment.TransactionID))
	}

	if productID, err := primitive.ObjectIDFromHex(payment.ProductID); err != nil {
		pc.Logger.Warn("payment carries malformed product id",
			zap.String("productId", payment.ProductID),
			zap.String("transactionId", payment.TransactionID))
	} else if res, err := pc.Products.UpdateOne(ctx, bson.M{"_id": productID}, update); err != nil {
		pc.Logger.Error("marking product paid failed",
			zap.String("productId", payment.ProductID),
			zap.Error(err))
	} else if res.MatchedCount == 0 {
		pc.Logger.Warn("payment matched no product",
			zap.String("productId", payment.ProductID),
			zap.String("transactionId", payment.TransactionID))
	}

	// A product without a promotion is the normal case; zero matches here is
	// a no-op, not an error.
	if _, err := pc.Promotions.UpdateOne(ctx, bson.M{"productId": payment.ProductID}, update); err != nil {
		pc.Logger.Error("marking promotion paid failed",
			zap.String("productId", payment.ProductID),
			zap.Error(err))
	}

	go func(p models.Payment) {
		if err := pc.EmailService.SendPaymentReceipt(p.Email, p.TransactionID, p.Price); err != nil {
			pc.Logger.Error("failed to send payment receipt",
				zap.String("email", p.Email),
				zap.Error(err))
		}
	}(payment)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}
