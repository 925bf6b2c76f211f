package airport

import (
	"context"

	"github.com/flightcalc/flightcalc/internal/models"
)

// Finder resolves a free-text city name to its most popular airport
type Finder interface {
	FindAirport(ctx context.Context, city string) (*models.Airport, error)
}
