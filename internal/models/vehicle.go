package models

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type Vehicle struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Brand          string       `json:"brand"`
	Model          string       `json:"model"`
	Year           int          `json:"year"`
	PricePerDay    float64      `json:"price_per_day"`
	FuelType       FuelType     `json:"fuel_type"`
	Seats          int          `json:"seats"`
	Transmission   Transmission `json:"transmission"`
	Images         []string     `json:"images"`
	Available      bool         `json:"available"`
	Description    string       `json:"description"`
	Features       []string     `json:"features"`
	Mileage        string       `json:"mileage"`
	EngineCapacity string       `json:"engine_capacity"`
}

type VehicleRequest struct {
	Name           string       `json:"name"`
	Brand          string       `json:"brand"`
	Model          string       `json:"model"`
	Year           int          `json:"year"`
	PricePerDay    float64      `json:"price_per_day"`
	FuelType       FuelType     `json:"fuel_type"`
	Seats          int          `json:"seats"`
	Transmission   Transmission `json:"transmission"`
	Images         []string     `json:"images"`
	Available      bool         `json:"available"`
	Description    string       `json:"description"`
	Features       []string     `json:"features"`
	Mileage        string       `json:"mileage"`
	EngineCapacity string       `json:"engine_capacity"`
}

type CatalogFacets struct {
	Brands    []string   `json:"brands"`
	FuelTypes []FuelType `json:"fuel_types"`
}
