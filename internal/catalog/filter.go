// Package catalog implements the pure filtering pipeline that narrows the
// vehicle list for display.
package catalog

import (
	"strconv"
	"strings"

	"luxurydrives/internal/models"
)

// All is the sentinel selector value that disables a categorical filter.
// An empty selector (unset query parameter) behaves the same way.
const All = "all"

type Criteria struct {
	Search        string
	Brand         string
	FuelType      string
	Transmission  string
	Seats         string
	PriceRange    string
	AvailableOnly bool
}

// Filter returns the vehicles matching every active predicate, preserving
// the original relative order. It never mutates the input.
func Filter(vehicles []models.Vehicle, c Criteria) []models.Vehicle {
	search := strings.ToLower(c.Search)
	minPrice, maxPrice, hasMax := parsePriceRange(c.PriceRange)

	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		if active(c.Brand) && v.Brand != c.Brand {
			continue
		}
		if active(c.FuelType) && string(v.FuelType) != c.FuelType {
			continue
		}
		if active(c.Transmission) && string(v.Transmission) != c.Transmission {
			continue
		}
		if active(c.Seats) && strconv.Itoa(v.Seats) != c.Seats {
			continue
		}
		if c.AvailableOnly && !v.Available {
			continue
		}
		if v.PricePerDay < minPrice {
			continue
		}
		if hasMax && v.PricePerDay > maxPrice {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesSearch(v models.Vehicle, search string) bool {
	return strings.Contains(strings.ToLower(v.Name), search) ||
		strings.Contains(strings.ToLower(v.Brand), search) ||
		strings.Contains(strings.ToLower(v.Model), search)
}

func active(selector string) bool {
	return selector != "" && selector != All
}

// parsePriceRange parses "min" or "min-max" tokens. An unparsable bound is
// treated as no constraint, so a malformed token never filters anything out.
func parsePriceRange(s string) (min, max float64, hasMax bool) {
	if !active(s) {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	if v, err := strconv.ParseFloat(parts[0], 64); err == nil {
		min = v
	}
	if len(parts) == 2 {
		if v, err := strconv.ParseFloat(parts[1], 64); err == nil {
			return min, v, true
		}
	}
	return min, 0, false
}

// Brands lists the distinct brands in first-seen order.
func Brands(vehicles []models.Vehicle) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range vehicles {
		if !seen[v.Brand] {
			seen[v.Brand] = true
			out = append(out, v.Brand)
		}
	}
	return out
}

// FuelTypes lists the distinct fuel types in first-seen order.
func FuelTypes(vehicles []models.Vehicle) []models.FuelType {
	seen := make(map[models.FuelType]bool)
	var out []models.FuelType
	for _, v := range vehicles {
		if !seen[v.FuelType] {
			seen[v.FuelType] = true
			out = append(out, v.FuelType)
		}
	}
	return out
}
