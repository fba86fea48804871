package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"luxurydrives/internal/catalog"
	"luxurydrives/internal/services"
	"luxurydrives/internal/store"
)

type VehicleHandler struct {
	vehicles *services.VehicleService
	logger   zerolog.Logger
}

func NewVehicleHandler(vehicles *services.VehicleService, logger zerolog.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicles: vehicles,
		logger:   logger,
	}
}

// ListCars returns the catalog narrowed by the filter query parameters.
func (h *VehicleHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars := h.vehicles.ListCars(criteriaFromQuery(r))
	respondWithJSON(w, http.StatusOK, cars)
}

func (h *VehicleHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	car, err := h.vehicles.GetCar(id)
	if err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			respondWithError(w, http.StatusNotFound, "vehicle_not_found", "Vehicle not found")
			return
		}
		h.logger.Error().Err(err).Str("vehicle_id", id).Msg("Error fetching vehicle")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch vehicle")
		return
	}

	respondWithJSON(w, http.StatusOK, car)
}

func (h *VehicleHandler) Facets(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.vehicles.Facets())
}

func criteriaFromQuery(r *http.Request) catalog.Criteria {
	q := r.URL.Query()
	return catalog.Criteria{
		Search:        q.Get("search"),
		Brand:         q.Get("brand"),
		FuelType:      q.Get("fuel_type"),
		Transmission:  q.Get("transmission"),
		Seats:         q.Get("seats"),
		PriceRange:    q.Get("price_range"),
		AvailableOnly: q.Get("available_only") == "true",
	}
}
