package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"luxurydrives/internal/middleware"
	"luxurydrives/internal/models"
	"luxurydrives/internal/services"
	"luxurydrives/internal/store"
)

type RentalHandler struct {
	rentals *services.RentalService
	logger  zerolog.Logger
}

func NewRentalHandler(rentals *services.RentalService, logger zerolog.Logger) *RentalHandler {
	return &RentalHandler{
		rentals: rentals,
		logger:  logger,
	}
}

// MyRentals returns the authenticated account's rentals with the vehicle
// resolved for display.
func (h *RentalHandler) MyRentals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	respondWithJSON(w, http.StatusOK, h.rentals.RentalsFor(userID))
}

func (h *RentalHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	rental, err := h.rentals.Book(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrVehicleNotFound):
			respondWithError(w, http.StatusNotFound, "vehicle_not_found", "Vehicle not found")
		case errors.Is(err, services.ErrVehicleUnavailable):
			respondWithError(w, http.StatusConflict, "vehicle_unavailable", "This vehicle is not available right now")
		case errors.Is(err, services.ErrInvalidDates):
			respondWithError(w, http.StatusBadRequest, "invalid_dates", "Please select valid pickup and return dates")
		default:
			h.logger.Error().Err(err).Msg("Booking failed")
			respondWithError(w, http.StatusInternalServerError, "booking_failed", "Failed to book the vehicle")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, rental)
}

// Quote prices a prospective booking; it does not require authentication
// and creates nothing.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	quote, err := h.rentals.Quote(&req)
	if err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			respondWithError(w, http.StatusNotFound, "vehicle_not_found", "Vehicle not found")
			return
		}
		h.logger.Error().Err(err).Msg("Quote failed")
		respondWithError(w, http.StatusInternalServerError, "quote_failed", "Failed to price the booking")
		return
	}

	respondWithJSON(w, http.StatusOK, quote)
}
