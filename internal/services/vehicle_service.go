package services

import (
	"errors"

	"github.com/rs/zerolog"

	"luxurydrives/internal/catalog"
	"luxurydrives/internal/models"
	"luxurydrives/internal/store"
)

type VehicleService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewVehicleService(st *store.Store, logger zerolog.Logger) *VehicleService {
	return &VehicleService{
		store:  st,
		logger: logger,
	}
}

// ListCars runs the catalog filter over the full fleet.
func (s *VehicleService) ListCars(c catalog.Criteria) []models.Vehicle {
	return catalog.Filter(s.store.Vehicles(), c)
}

func (s *VehicleService) GetCar(id string) (models.Vehicle, error) {
	v, ok := s.store.VehicleByID(id)
	if !ok {
		return models.Vehicle{}, store.ErrVehicleNotFound
	}
	return v, nil
}

// Facets returns the distinct brand and fuel-type values the filter UI
// offers as selectors.
func (s *VehicleService) Facets() models.CatalogFacets {
	vehicles := s.store.Vehicles()
	return models.CatalogFacets{
		Brands:    catalog.Brands(vehicles),
		FuelTypes: catalog.FuelTypes(vehicles),
	}
}

func (s *VehicleService) AddCar(req *models.VehicleRequest) (models.Vehicle, error) {
	if err := validateVehicle(req); err != nil {
		return models.Vehicle{}, err
	}

	v := s.store.AddVehicle(vehicleFromRequest(req))
	s.logger.Info().Str("vehicle_id", v.ID).Str("name", v.Name).Msg("Vehicle added to fleet")
	return v, nil
}

// UpdateCar replaces the whole record for the given identifier.
func (s *VehicleService) UpdateCar(id string, req *models.VehicleRequest) (models.Vehicle, error) {
	if err := validateVehicle(req); err != nil {
		return models.Vehicle{}, err
	}

	v, err := s.store.ReplaceVehicle(id, vehicleFromRequest(req))
	if err != nil {
		return models.Vehicle{}, err
	}
	s.logger.Info().Str("vehicle_id", v.ID).Msg("Vehicle updated")
	return v, nil
}

func (s *VehicleService) DeleteCar(id string) error {
	if err := s.store.DeleteVehicle(id); err != nil {
		return err
	}
	s.logger.Info().Str("vehicle_id", id).Msg("Vehicle removed from fleet")
	return nil
}

func validateVehicle(req *models.VehicleRequest) error {
	if req.Name == "" || req.Brand == "" || req.Model == "" {
		return errors.New("name, brand, and model are required")
	}
	if req.PricePerDay <= 0 {
		return errors.New("price per day must be positive")
	}
	return nil
}

func vehicleFromRequest(req *models.VehicleRequest) models.Vehicle {
	return models.Vehicle{
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Year:           req.Year,
		PricePerDay:    req.PricePerDay,
		FuelType:       req.FuelType,
		Seats:          req.Seats,
		Transmission:   req.Transmission,
		Images:         req.Images,
		Available:      req.Available,
		Description:    req.Description,
		Features:       req.Features,
		Mileage:        req.Mileage,
		EngineCapacity: req.EngineCapacity,
	}
}
