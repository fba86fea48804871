package services

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"luxurydrives/internal/models"
	"luxurydrives/internal/store"
)

var (
	ErrInvalidStatus      = errors.New("invalid rental status")
	ErrInvalidDates       = errors.New("pickup and return dates are required and must span at least one day")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
)

const dateLayout = "2006-01-02"

type RentalService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewRentalService(st *store.Store, logger zerolog.Logger) *RentalService {
	return &RentalService{
		store:  st,
		logger: logger,
	}
}

// CalculateTotalDays returns the day count between pickup and return,
// clamped to zero when the return date is missing, unparsable, or earlier
// than the pickup date.
func CalculateTotalDays(pickupDate, returnDate string) int {
	if pickupDate == "" || returnDate == "" {
		return 0
	}
	start, err := time.Parse(dateLayout, pickupDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// Quote prices a prospective booking without creating anything.
func (s *RentalService) Quote(req *models.QuoteRequest) (models.Quote, error) {
	car, ok := s.store.VehicleByID(req.CarID)
	if !ok {
		return models.Quote{}, store.ErrVehicleNotFound
	}

	days := CalculateTotalDays(req.PickupDate, req.ReturnDate)
	return models.Quote{
		CarID:       car.ID,
		TotalDays:   days,
		TotalAmount: float64(days) * car.PricePerDay,
	}, nil
}

// Book records a rental for the given account. The booking starts out
// active; admin tooling moves it through the rest of its lifecycle.
func (s *RentalService) Book(userID string, req *models.BookingRequest) (models.Rental, error) {
	car, ok := s.store.VehicleByID(req.CarID)
	if !ok {
		return models.Rental{}, store.ErrVehicleNotFound
	}
	if !car.Available {
		return models.Rental{}, ErrVehicleUnavailable
	}

	days := CalculateTotalDays(req.PickupDate, req.ReturnDate)
	if days == 0 {
		return models.Rental{}, ErrInvalidDates
	}

	rental := s.store.AddRental(models.Rental{
		ID:          uuid.NewString(),
		UserID:      userID,
		CarID:       car.ID,
		PickupDate:  req.PickupDate,
		ReturnDate:  req.ReturnDate,
		TotalAmount: float64(days) * car.PricePerDay,
		Status:      models.RentalStatusActive,
		CreatedAt:   time.Now().Format(dateLayout),
	})

	s.logger.Info().
		Str("rental_id", rental.ID).
		Str("user_id", userID).
		Str("car_id", car.ID).
		Float64("total_amount", rental.TotalAmount).
		Msg("Rental booked")
	return rental, nil
}

// RentalsFor returns the account's rentals with the vehicle resolved.
func (s *RentalService) RentalsFor(userID string) []models.Rental {
	return s.store.RentalsByAccount(userID)
}

// AllRentals returns every rental with vehicle and account resolved, for
// the admin views. Optional status filter; "all" and "" disable it.
func (s *RentalService) AllRentals(status string) []models.Rental {
	rentals := s.store.AllRentalsWithDetails()
	if status == "" || status == "all" {
		return rentals
	}
	out := make([]models.Rental, 0, len(rentals))
	for _, r := range rentals {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

// UpdateStatus sets a rental's status, the only mutation admin tooling
// performs after creation. The target status must be one of the known four.
func (s *RentalService) UpdateStatus(id string, status models.RentalStatus) (models.Rental, error) {
	if !models.ValidRentalStatus(status) {
		return models.Rental{}, ErrInvalidStatus
	}

	rental, err := s.store.UpdateRentalStatus(id, status)
	if err != nil {
		return models.Rental{}, err
	}
	s.logger.Info().Str("rental_id", id).Str("status", string(status)).Msg("Rental status updated")
	return rental, nil
}

func (s *RentalService) MonthlyRevenue() []models.MonthlyRevenue {
	return s.store.MonthlyRevenue()
}

// RevenueByBrand estimates a month of revenue per brand from the current
// fleet (30 rental days per car), in first-seen brand order.
func (s *RentalService) RevenueByBrand() []models.BrandRevenue {
	var out []models.BrandRevenue
	index := make(map[string]int)
	for _, car := range s.store.Vehicles() {
		revenue := car.PricePerDay * 30
		if i, ok := index[car.Brand]; ok {
			out[i].Revenue += revenue
			continue
		}
		index[car.Brand] = len(out)
		out = append(out, models.BrandRevenue{Brand: car.Brand, Revenue: revenue})
	}
	return out
}

func (s *RentalService) Stats() models.RentalStats {
	return s.store.Stats()
}
