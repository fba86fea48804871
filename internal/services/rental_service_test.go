package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxurydrives/internal/models"
	"luxurydrives/internal/store"
)

func TestCalculateTotalDays(t *testing.T) {
	assert.Equal(t, 4, CalculateTotalDays("2024-12-01", "2024-12-05"))
	assert.Equal(t, 0, CalculateTotalDays("2024-12-05", "2024-12-01"), "earlier return clamps to zero")
	assert.Equal(t, 0, CalculateTotalDays("2024-12-01", "2024-12-01"))
	assert.Equal(t, 0, CalculateTotalDays("", "2024-12-05"))
	assert.Equal(t, 0, CalculateTotalDays("2024-12-01", "not-a-date"))
}

func TestQuote(t *testing.T) {
	s := NewRentalService(store.New(), zerolog.Nop())

	q, err := s.Quote(&models.QuoteRequest{CarID: "1", PickupDate: "2024-12-01", ReturnDate: "2024-12-05"})
	require.NoError(t, err)
	assert.Equal(t, 4, q.TotalDays)
	assert.Equal(t, 1800.0, q.TotalAmount)

	_, err = s.Quote(&models.QuoteRequest{CarID: "missing"})
	assert.ErrorIs(t, err, store.ErrVehicleNotFound)
}

func TestBook(t *testing.T) {
	st := store.New()
	s := NewRentalService(st, zerolog.Nop())

	rental, err := s.Book("1", &models.BookingRequest{CarID: "5", PickupDate: "2024-12-10", ReturnDate: "2024-12-12"})
	require.NoError(t, err)
	assert.NotEmpty(t, rental.ID)
	assert.Equal(t, models.RentalStatusActive, rental.Status)
	assert.Equal(t, 760.0, rental.TotalAmount)

	got, ok := st.RentalByID(rental.ID)
	require.True(t, ok)
	assert.Equal(t, "1", got.UserID)
}

func TestBookRejectsUnavailableVehicle(t *testing.T) {
	s := NewRentalService(store.New(), zerolog.Nop())

	// car 4 is seeded unavailable
	_, err := s.Book("1", &models.BookingRequest{CarID: "4", PickupDate: "2024-12-10", ReturnDate: "2024-12-12"})
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestBookRejectsZeroDayRange(t *testing.T) {
	s := NewRentalService(store.New(), zerolog.Nop())

	_, err := s.Book("1", &models.BookingRequest{CarID: "1", PickupDate: "2024-12-12", ReturnDate: "2024-12-10"})
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestAllRentalsStatusFilter(t *testing.T) {
	s := NewRentalService(store.New(), zerolog.Nop())

	all := s.AllRentals("all")
	assert.Len(t, all, 4)
	for _, r := range all {
		require.NotNil(t, r.Car)
		require.NotNil(t, r.User)
	}

	completed := s.AllRentals("completed")
	assert.Len(t, completed, 2)
}

func TestUpdateStatus(t *testing.T) {
	s := NewRentalService(store.New(), zerolog.Nop())

	rental, err := s.UpdateStatus("1", models.RentalStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.RentalStatusCompleted, rental.Status)

	_, err = s.UpdateStatus("1", models.RentalStatus("paused"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = s.UpdateStatus("missing", models.RentalStatusActive)
	assert.ErrorIs(t, err, store.ErrRentalNotFound)
}

func TestRevenueByBrand(t *testing.T) {
	s := NewRentalService(store.New(), zerolog.Nop())

	got := s.RevenueByBrand()
	require.Len(t, got, 6) // seeded brands are all distinct
	assert.Equal(t, models.BrandRevenue{Brand: "Mercedes-Benz", Revenue: 13500}, got[0])
	assert.Equal(t, models.BrandRevenue{Brand: "Tesla", Revenue: 11400}, got[4])
}
