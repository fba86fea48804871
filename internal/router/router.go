package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"luxurydrives/internal/handlers"
	"luxurydrives/internal/middleware"
	"luxurydrives/internal/services"
	"luxurydrives/internal/session"
	"luxurydrives/internal/store"
)

func SetupRouter(st *store.Store, sessions *session.Manager, jwtSecret string, logger zerolog.Logger) *mux.Router {
	vehicleService := services.NewVehicleService(st, logger)
	rentalService := services.NewRentalService(st, logger)

	authHandler := handlers.NewAuthHandler(sessions, st, logger)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, logger)
	rentalHandler := handlers.NewRentalHandler(rentalService, logger)
	adminHandler := handlers.NewAdminHandler(vehicleService, rentalService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not_found","message":"The page you are looking for does not exist"}`))
	})

	api := r.PathPrefix("/api/v1").Subrouter()

	cars := api.PathPrefix("/cars").Subrouter()
	cars.HandleFunc("", vehicleHandler.ListCars).Methods("GET")
	cars.HandleFunc("/facets", vehicleHandler.Facets).Methods("GET")
	cars.HandleFunc("/{id}", vehicleHandler.GetCar).Methods("GET")

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	protectedAuth := auth.PathPrefix("").Subrouter()
	protectedAuth.Use(middleware.Authentication(jwtSecret, logger))
	protectedAuth.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Quotes are priced before login, so they sit outside the protected
	// rentals subrouter.
	api.HandleFunc("/rentals/quote", rentalHandler.Quote).Methods("POST")

	rentals := api.PathPrefix("/rentals").Subrouter()
	rentals.Use(middleware.Authentication(jwtSecret, logger))
	rentals.Use(middleware.RequestValidation())
	rentals.HandleFunc("", rentalHandler.MyRentals).Methods("GET")
	rentals.HandleFunc("", rentalHandler.Book).Methods("POST")

	// Role gating here is client convenience, not a security boundary.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Authentication(jwtSecret, logger))
	admin.Use(middleware.RequireAdmin())
	admin.HandleFunc("/cars", adminHandler.ListCars).Methods("GET")
	admin.HandleFunc("/cars", adminHandler.CreateCar).Methods("POST")
	admin.HandleFunc("/cars/{id}", adminHandler.UpdateCar).Methods("PUT")
	admin.HandleFunc("/cars/{id}", adminHandler.DeleteCar).Methods("DELETE")
	admin.HandleFunc("/rentals", adminHandler.Rentals).Methods("GET")
	admin.HandleFunc("/rentals/{id}/status", adminHandler.UpdateRentalStatus).Methods("PUT")
	admin.HandleFunc("/revenue", adminHandler.Revenue).Methods("GET")
	admin.HandleFunc("/stats", adminHandler.Stats).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
