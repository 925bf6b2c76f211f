package fare

import (
	"context"
	"time"

	"github.com/flightcalc/flightcalc/internal/models"
)

// PriceFinder looks up the best round-trip price for a route. A nil price
// with a nil error means no fare was found.
type PriceFinder interface {
	BestPrice(ctx context.Context, departure, destination models.Airport) (*float64, error)
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
