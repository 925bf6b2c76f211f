package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/flightcalc/flightcalc/internal/config"
	"github.com/flightcalc/flightcalc/internal/models"
)

// Report is the JSON document produced for one run
type Report struct {
	ID          uuid.UUID       `json:"id"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Currency    string          `json:"currency"`
	Flights     []FlightSummary `json:"flights"`
}

type FlightSummary struct {
	models.Flight
	PricePerKm *float64 `json:"pricePerKm,omitempty"`
}

func New(flights []models.Flight, generatedAt time.Time) *Report {
	summaries := make([]FlightSummary, len(flights))
	for i, f := range flights {
		summaries[i] = FlightSummary{Flight: f}
		if ppk, ok := f.PricePerKm(); ok {
			summaries[i].PricePerKm = &ppk
		}
	}

	return &Report{
		ID:          uuid.New(),
		GeneratedAt: generatedAt.UTC(),
		Currency:    config.Currency,
		Flights:     summaries,
	}
}
