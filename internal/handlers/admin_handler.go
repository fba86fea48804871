package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"luxurydrives/internal/catalog"
	"luxurydrives/internal/models"
	"luxurydrives/internal/services"
	"luxurydrives/internal/store"
)

// AdminHandler backs the admin section: fleet CRUD, rental status
// management, and revenue analytics.
type AdminHandler struct {
	vehicles *services.VehicleService
	rentals  *services.RentalService
	logger   zerolog.Logger
}

func NewAdminHandler(vehicles *services.VehicleService, rentals *services.RentalService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		vehicles: vehicles,
		rentals:  rentals,
		logger:   logger,
	}
}

func (h *AdminHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars := h.vehicles.ListCars(catalog.Criteria{Search: r.URL.Query().Get("search")})
	respondWithJSON(w, http.StatusOK, cars)
}

func (h *AdminHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req models.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	car, err := h.vehicles.AddCar(&req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, car)
}

func (h *AdminHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	car, err := h.vehicles.UpdateCar(id, &req)
	if err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			respondWithError(w, http.StatusNotFound, "vehicle_not_found", "Vehicle not found")
			return
		}
		respondWithError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, car)
}

func (h *AdminHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.vehicles.DeleteCar(id); err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			respondWithError(w, http.StatusNotFound, "vehicle_not_found", "Vehicle not found")
			return
		}
		h.logger.Error().Err(err).Str("vehicle_id", id).Msg("Error deleting vehicle")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to delete vehicle")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
}

// Rentals returns every rental with account and vehicle details attached,
// optionally narrowed by status.
func (h *AdminHandler) Rentals(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.rentals.AllRentals(r.URL.Query().Get("status")))
}

func (h *AdminHandler) UpdateRentalStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	rental, err := h.rentals.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, "invalid_status", "Status must be active, completed, cancelled, or pending")
		case errors.Is(err, store.ErrRentalNotFound):
			respondWithError(w, http.StatusNotFound, "rental_not_found", "Rental not found")
		default:
			h.logger.Error().Err(err).Str("rental_id", id).Msg("Error updating rental status")
			respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to update rental status")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, rental)
}

// Revenue returns the labeled series the charting component renders.
func (h *AdminHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"monthly":  h.rentals.MonthlyRevenue(),
		"by_brand": h.rentals.RevenueByBrand(),
	})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.rentals.Stats())
}
