// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/parvez1407/car-hut-server/config"
	"github.com/parvez1407/car-hut-server/controllers"
	"github.com/parvez1407/car-hut-server/routes"
	"github.com/parvez1407/car-hut-server/utils"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Set the JWT secret key and the payment gateway key
	utils.JwtKey = []byte(cfg.JWTSecret)
	stripe.Key = cfg.StripeSecretKey

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.SendgridAPIKey, cfg.EmailSender)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database(cfg.DBName)

	// Initialize controllers
	userController := controllers.NewUserController(db, emailService, logger)
	productController := controllers.NewProductController(db)
	promotionController := controllers.NewPromotionController(db)
	bookingController := controllers.NewBookingController(db)
	wishlistController := controllers.NewWishlistController(db)
	paymentController := controllers.NewPaymentController(db, emailService, logger)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController,
		promotionController, bookingController, wishlistController, paymentController)

	// The browser client sends bearer tokens, so preflights must be answered
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	// Start the server
	fmt.Printf("Car-Hut is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(router)))
}
