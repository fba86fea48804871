package store

import "luxurydrives/internal/models"

// SeedVehicles is the default six-car catalog.
func SeedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:           "1",
			Name:         "Mercedes S-Class",
			Brand:        "Mercedes-Benz",
			Model:        "S 500",
			Year:         2024,
			PricePerDay:  450,
			FuelType:     models.FuelPetrol,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Images: []string{
				"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800",
				"https://images.unsplash.com/photo-1617531653332-bd46c24f2068?w=800",
			},
			Available:      true,
			Description:    "Experience ultimate luxury with the Mercedes S-Class. Perfect for business executives and special occasions.",
			Features:       []string{"Leather Seats", "Panoramic Roof", "Massage Seats", "Burmester Sound", "Night Vision"},
			Mileage:        "8.5 km/l",
			EngineCapacity: "3.0L V6",
		},
		{
			ID:           "2",
			Name:         "BMW 7 Series",
			Brand:        "BMW",
			Model:        "740i",
			Year:         2024,
			PricePerDay:  420,
			FuelType:     models.FuelPetrol,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800",
				"https://images.unsplash.com/photo-1523983388277-336a66bf9bcd?w=800",
			},
			Available:      true,
			Description:    "The BMW 7 Series combines athletic performance with sophisticated luxury.",
			Features:       []string{"Executive Lounge", "Sky Lounge Roof", "Theater Screen", "Bowers & Wilkins Audio"},
			Mileage:        "9.2 km/l",
			EngineCapacity: "3.0L I6",
		},
		{
			ID:           "3",
			Name:         "Porsche 911",
			Brand:        "Porsche",
			Model:        "911 Carrera",
			Year:         2024,
			PricePerDay:  650,
			FuelType:     models.FuelPetrol,
			Seats:        2,
			Transmission: models.TransmissionAutomatic,
			Images: []string{
				"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=800",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800",
			},
			Available:      true,
			Description:    "An icon of sports car excellence. Pure driving pleasure awaits.",
			Features:       []string{"Sport Chrono Package", "PASM Suspension", "Sport Exhaust", "Carbon Ceramic Brakes"},
			Mileage:        "7.8 km/l",
			EngineCapacity: "3.0L Flat-6",
		},
		{
			ID:           "4",
			Name:         "Range Rover",
			Brand:        "Land Rover",
			Model:        "Autobiography",
			Year:         2024,
			PricePerDay:  500,
			FuelType:     models.FuelDiesel,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Images: []string{
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800",
				"https://images.unsplash.com/photo-1519641471654-76ce0107ad1b?w=800",
			},
			Available:      false,
			Description:    "The ultimate luxury SUV combining refinement with all-terrain capability.",
			Features:       []string{"Air Suspension", "Terrain Response", "Meridian Audio", "Heated Steering"},
			Mileage:        "10.5 km/l",
			EngineCapacity: "3.0L D300",
		},
		{
			ID:           "5",
			Name:         "Tesla Model S",
			Brand:        "Tesla",
			Model:        "Plaid",
			Year:         2024,
			PricePerDay:  380,
			FuelType:     models.FuelElectric,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Images: []string{
				"https://images.unsplash.com/photo-1617788138017-80ad40651399?w=800",
				"https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800",
			},
			Available:      true,
			Description:    "The future of driving. Incredible acceleration with zero emissions.",
			Features:       []string{"Autopilot", "Gaming Computer", "HEPA Filtration", "0-60 in 1.99s"},
			Mileage:        "600 km range",
			EngineCapacity: "Tri Motor",
		},
		{
			ID:           "6",
			Name:         "Audi RS7",
			Brand:        "Audi",
			Model:        "RS7 Sportback",
			Year:         2024,
			PricePerDay:  520,
			FuelType:     models.FuelPetrol,
			Seats:        4,
			Transmission: models.TransmissionAutomatic,
			Images: []string{
				"https://images.unsplash.com/photo-1606664913246-d08ea2dbced3?w=800",
				"https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?w=800",
			},
			Available:      true,
			Description:    "Performance meets elegance in this stunning four-door coupe.",
			Features:       []string{"Quattro AWD", "RS Sport Suspension", "Bang & Olufsen Sound", "Carbon Package"},
			Mileage:        "8.0 km/l",
			EngineCapacity: "4.0L V8",
		},
	}
}

func SeedAccounts() []models.Account {
	return []models.Account{
		{
			ID:        "1",
			Name:      "John Anderson",
			Email:     "john@example.com",
			Phone:     "+1 234 567 8900",
			Role:      models.RoleUser,
			CreatedAt: "2024-01-15",
		},
		{
			ID:        "2",
			Name:      "Sarah Mitchell",
			Email:     "sarah@example.com",
			Phone:     "+1 234 567 8901",
			Role:      models.RoleUser,
			CreatedAt: "2024-02-20",
		},
		{
			ID:        "admin",
			Name:      "Admin User",
			Email:     "admin@luxurydrives.com",
			Phone:     "+1 234 567 8999",
			Role:      models.RoleAdmin,
			CreatedAt: "2024-01-01",
		},
	}
}

func SeedRentals() []models.Rental {
	return []models.Rental{
		{
			ID:          "1",
			UserID:      "1",
			CarID:       "1",
			PickupDate:  "2024-12-01",
			ReturnDate:  "2024-12-05",
			TotalAmount: 1800,
			Status:      models.RentalStatusActive,
			CreatedAt:   "2024-11-28",
		},
		{
			ID:          "2",
			UserID:      "1",
			CarID:       "3",
			PickupDate:  "2024-11-15",
			ReturnDate:  "2024-11-18",
			TotalAmount: 1950,
			Status:      models.RentalStatusCompleted,
			CreatedAt:   "2024-11-10",
		},
		{
			ID:          "3",
			UserID:      "2",
			CarID:       "2",
			PickupDate:  "2024-12-02",
			ReturnDate:  "2024-12-08",
			TotalAmount: 2520,
			Status:      models.RentalStatusActive,
			CreatedAt:   "2024-11-30",
		},
		{
			ID:          "4",
			UserID:      "2",
			CarID:       "5",
			PickupDate:  "2024-10-20",
			ReturnDate:  "2024-10-25",
			TotalAmount: 1900,
			Status:      models.RentalStatusCompleted,
			CreatedAt:   "2024-10-15",
		},
	}
}

func SeedMonthlyRevenue() []models.MonthlyRevenue {
	return []models.MonthlyRevenue{
		{Month: "Jan", Revenue: 45000},
		{Month: "Feb", Revenue: 52000},
		{Month: "Mar", Revenue: 48000},
		{Month: "Apr", Revenue: 61000},
		{Month: "May", Revenue: 55000},
		{Month: "Jun", Revenue: 67000},
		{Month: "Jul", Revenue: 72000},
		{Month: "Aug", Revenue: 69000},
		{Month: "Sep", Revenue: 58000},
		{Month: "Oct", Revenue: 63000},
		{Month: "Nov", Revenue: 71000},
		{Month: "Dec", Revenue: 78000},
	}
}

func SeedStats() models.RentalStats {
	return models.RentalStats{
		TotalRevenue:    739000,
		TotalRentals:    1847,
		ActiveRentals:   23,
		CarsRentedToday: 8,
	}
}
