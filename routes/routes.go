// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/parvez1407/car-hut-server/controllers"
	"github.com/parvez1407/car-hut-server/middleware"
)

// RegisterRoutes sets up all the routes for the application. Public routes
// are registered on the root router first so they are matched before the
// token-gated subrouter.
func RegisterRoutes(router *mux.Router,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	promotionController *controllers.PromotionController,
	bookingController *controllers.BookingController,
	wishlistController *controllers.WishlistController,
	paymentController *controllers.PaymentController) {

	// Liveness
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Car-Hut server is running"))
	}).Methods("GET")

	// Public routes
	router.HandleFunc("/jwt", userController.IssueToken).Methods("GET")
	router.HandleFunc("/user/{email}", userController.UpsertUser).Methods("PUT")
	router.HandleFunc("/users/admin/{email}", userController.CheckAdmin).Methods("GET")
	router.HandleFunc("/users/seller/{email}", userController.CheckSeller).Methods("GET")
	router.HandleFunc("/categories", productController.GetCategories).Methods("GET")
	router.HandleFunc("/category/{id}", productController.GetProductsByCategory).Methods("GET")
	router.HandleFunc("/promotions", promotionController.GetPromotions).Methods("GET")
	router.HandleFunc("/booking/{id}", bookingController.GetBookingByID).Methods("GET")
	router.HandleFunc("/create-payment-intent", paymentController.CreatePaymentIntent).Methods("POST")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/sellers", userController.GetSellers).Methods("GET")
	protected.HandleFunc("/buyers", userController.GetBuyers).Methods("GET")
	protected.HandleFunc("/sellers/{id}", userController.DeleteUser).Methods("DELETE")
	protected.HandleFunc("/buyers/{id}", userController.DeleteUser).Methods("DELETE")
	protected.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	protected.HandleFunc("/products/{id}", productController.DeleteProduct).Methods("DELETE")
	protected.HandleFunc("/myproducts/{email}", productController.GetMyProducts).Methods("GET")
	protected.HandleFunc("/promotions", promotionController.CreatePromotion).Methods("POST")
	protected.HandleFunc("/bookings", bookingController.CreateBooking).Methods("POST")
	protected.HandleFunc("/bookings/{email}", bookingController.GetBookings).Methods("GET")
	protected.HandleFunc("/wishlists", wishlistController.AddWishlist).Methods("PUT")
	protected.HandleFunc("/wishlists", wishlistController.CreateWishlist).Methods("POST")
	protected.HandleFunc("/wishlists/{email}", wishlistController.GetWishlists).Methods("GET")
	protected.HandleFunc("/payments", paymentController.ConfirmPayment).Methods("POST")
	protected.HandleFunc("/verification", userController.VerifySeller).Methods("POST")
}
