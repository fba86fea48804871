package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxurydrives/internal/models"
)

func TestSeededCollections(t *testing.T) {
	s := New()

	assert.Len(t, s.Vehicles(), 6)
	assert.Len(t, s.Accounts(), 3)
	assert.Len(t, s.Rentals(), 4)
	assert.Len(t, s.MonthlyRevenue(), 12)
	assert.Equal(t, 1847, s.Stats().TotalRentals)
}

func TestVehicleLookup(t *testing.T) {
	s := New()

	v, ok := s.VehicleByID("3")
	require.True(t, ok)
	assert.Equal(t, "Porsche 911", v.Name)

	_, ok = s.VehicleByID("missing")
	assert.False(t, ok)
}

func TestVehicleCRUD(t *testing.T) {
	s := New()

	added := s.AddVehicle(models.Vehicle{Name: "Bentley Continental", Brand: "Bentley", Model: "GT", PricePerDay: 700})
	require.NotEmpty(t, added.ID)
	assert.Len(t, s.Vehicles(), 7)

	updated, err := s.ReplaceVehicle(added.ID, models.Vehicle{Name: "Bentley Continental GT", Brand: "Bentley", Model: "GT Speed", PricePerDay: 750})
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID, "replace keeps the identifier")
	assert.Equal(t, "Bentley Continental GT", updated.Name)

	_, err = s.ReplaceVehicle("missing", models.Vehicle{})
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	require.NoError(t, s.DeleteVehicle(added.ID))
	assert.Len(t, s.Vehicles(), 6)
	assert.ErrorIs(t, s.DeleteVehicle(added.ID), ErrVehicleNotFound)
}

func TestAccountLookups(t *testing.T) {
	s := New()

	a, ok := s.AccountByEmail("admin@luxurydrives.com")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, a.Role)

	_, ok = s.AccountByEmail("nobody@example.com")
	assert.False(t, ok)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	s := New()

	err := s.CreateAccount(models.Account{ID: "x", Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, s.Accounts(), 3)

	require.NoError(t, s.CreateAccount(models.Account{ID: "y", Email: "fresh@example.com"}))
	assert.Len(t, s.Accounts(), 4)
}

func TestRentalsByAccountAttachesVehicle(t *testing.T) {
	s := New()

	rentals := s.RentalsByAccount("1")
	require.Len(t, rentals, 2)
	require.NotNil(t, rentals[0].Car)
	assert.Equal(t, "Mercedes S-Class", rentals[0].Car.Name)
	assert.Nil(t, rentals[0].User, "per-account view does not resolve the account")
}

func TestRentalsByAccountDanglingReference(t *testing.T) {
	s := New()
	s.AddRental(models.Rental{ID: "r-dangling", UserID: "1", CarID: "no-such-car"})

	rentals := s.RentalsByAccount("1")
	require.Len(t, rentals, 3)
	assert.Nil(t, rentals[2].Car, "dangling car reference resolves to nil, not an error")
}

func TestAllRentalsWithDetails(t *testing.T) {
	s := New()

	rentals := s.AllRentalsWithDetails()
	require.Len(t, rentals, 4)
	for _, r := range rentals {
		require.NotNil(t, r.Car, "rental %s", r.ID)
		require.NotNil(t, r.User, "rental %s", r.ID)
	}
	assert.Equal(t, "John Anderson", rentals[0].User.Name)
}

func TestUpdateRentalStatus(t *testing.T) {
	s := New()

	r, err := s.UpdateRentalStatus("1", models.RentalStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.RentalStatusCancelled, r.Status)

	got, ok := s.RentalByID("1")
	require.True(t, ok)
	assert.Equal(t, models.RentalStatusCancelled, got.Status)

	_, err = s.UpdateRentalStatus("missing", models.RentalStatusActive)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestCollectionsReturnCopies(t *testing.T) {
	s := New()

	vehicles := s.Vehicles()
	vehicles[0].Name = "mutated"

	v, ok := s.VehicleByID(vehicles[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Mercedes S-Class", v.Name)
}
