package models

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
	RentalStatusPending   RentalStatus = "pending"
)

// ValidRentalStatus reports whether s is one of the four known statuses.
func ValidRentalStatus(s RentalStatus) bool {
	switch s {
	case RentalStatusActive, RentalStatusCompleted, RentalStatusCancelled, RentalStatusPending:
		return true
	}
	return false
}

// Rental links an Account to a Vehicle over a date range. Car and User are
// filled in by the join views; they stay nil when the reference dangles.
type Rental struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	CarID       string       `json:"car_id"`
	Car         *Vehicle     `json:"car,omitempty"`
	User        *Account     `json:"user,omitempty"`
	PickupDate  string       `json:"pickup_date"`
	ReturnDate  string       `json:"return_date"`
	TotalAmount float64      `json:"total_amount"`
	Status      RentalStatus `json:"status"`
	CreatedAt   string       `json:"created_at"`
}

type BookingRequest struct {
	CarID      string `json:"car_id"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
}

type QuoteRequest struct {
	CarID      string `json:"car_id"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
}

type Quote struct {
	CarID       string  `json:"car_id"`
	TotalDays   int     `json:"total_days"`
	TotalAmount float64 `json:"total_amount"`
}

type StatusUpdateRequest struct {
	Status RentalStatus `json:"status"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type BrandRevenue struct {
	Brand   string  `json:"brand"`
	Revenue float64 `json:"revenue"`
}

type RentalStats struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalRentals    int     `json:"total_rentals"`
	ActiveRentals   int     `json:"active_rentals"`
	CarsRentedToday int     `json:"cars_rented_today"`
}
