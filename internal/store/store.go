package store

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"luxurydrives/internal/models"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrRentalNotFound  = errors.New("rental not found")
	ErrEmailTaken      = errors.New("account with this email already exists")
)

// Store holds all domain data in memory. There is no backing database;
// mutations survive only for the lifetime of the process.
type Store struct {
	mu             sync.RWMutex
	vehicles       []models.Vehicle
	accounts       []models.Account
	rentals        []models.Rental
	monthlyRevenue []models.MonthlyRevenue
	stats          models.RentalStats
}

// New returns a Store populated with the default mock data set.
func New() *Store {
	return &Store{
		vehicles:       SeedVehicles(),
		accounts:       SeedAccounts(),
		rentals:        SeedRentals(),
		monthlyRevenue: SeedMonthlyRevenue(),
		stats:          SeedStats(),
	}
}

func (s *Store) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Vehicle(nil), s.vehicles...)
}

func (s *Store) VehicleByID(id string) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicleByID(id)
}

func (s *Store) vehicleByID(id string) (models.Vehicle, bool) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// AddVehicle appends a new vehicle, assigning a time-based identifier when
// none is set.
func (s *Store) AddVehicle(v models.Vehicle) models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == "" {
		v.ID = timeID()
	}
	s.vehicles = append(s.vehicles, v)
	return v
}

// ReplaceVehicle swaps out the whole record for the given identifier.
func (s *Store) ReplaceVehicle(id string, v models.Vehicle) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			v.ID = id
			s.vehicles[i] = v
			return v, nil
		}
	}
	return models.Vehicle{}, ErrVehicleNotFound
}

func (s *Store) DeleteVehicle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return nil
		}
	}
	return ErrVehicleNotFound
}

func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Account(nil), s.accounts...)
}

func (s *Store) AccountByID(id string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountByID(id)
}

func (s *Store) accountByID(id string) (models.Account, bool) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Account{}, false
}

// AccountByEmail returns the first account with an exact email match.
func (s *Store) AccountByEmail(email string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Email == email {
			return a, true
		}
	}
	return models.Account{}, false
}

// CreateAccount appends the account, rejecting duplicate emails. The
// duplicate check and the append happen under one lock so concurrent
// registrations cannot race past each other.
func (s *Store) CreateAccount(a models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.Email == a.Email {
			return ErrEmailTaken
		}
	}
	s.accounts = append(s.accounts, a)
	return nil
}

func (s *Store) Rentals() []models.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rental(nil), s.rentals...)
}

func (s *Store) RentalByID(id string) (models.Rental, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rentals {
		if r.ID == id {
			return r, true
		}
	}
	return models.Rental{}, false
}

// RentalsByAccount filters rentals by owning account and attaches the
// resolved vehicle. A dangling car reference leaves Car nil.
func (s *Store) RentalsByAccount(userID string) []models.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Rental
	for _, r := range s.rentals {
		if r.UserID != userID {
			continue
		}
		if car, ok := s.vehicleByID(r.CarID); ok {
			c := car
			r.Car = &c
		}
		out = append(out, r)
	}
	return out
}

// AllRentalsWithDetails attaches both the resolved vehicle and account to
// every rental, for the admin views.
func (s *Store) AllRentalsWithDetails() []models.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Rental, 0, len(s.rentals))
	for _, r := range s.rentals {
		if car, ok := s.vehicleByID(r.CarID); ok {
			c := car
			r.Car = &c
		}
		if acc, ok := s.accountByID(r.UserID); ok {
			a := acc
			r.User = &a
		}
		out = append(out, r)
	}
	return out
}

func (s *Store) AddRental(r models.Rental) models.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = timeID()
	}
	s.rentals = append(s.rentals, r)
	return r
}

// UpdateRentalStatus mutates the status field, the only rental field that
// changes after creation.
func (s *Store) UpdateRentalStatus(id string, status models.RentalStatus) (models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rentals {
		if s.rentals[i].ID == id {
			s.rentals[i].Status = status
			return s.rentals[i], nil
		}
	}
	return models.Rental{}, ErrRentalNotFound
}

func (s *Store) MonthlyRevenue() []models.MonthlyRevenue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MonthlyRevenue(nil), s.monthlyRevenue...)
}

func (s *Store) Stats() models.RentalStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func timeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
