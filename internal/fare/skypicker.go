package fare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/flightcalc/flightcalc/internal/config"
	"github.com/flightcalc/flightcalc/internal/models"
	"github.com/flightcalc/flightcalc/pkg/http/client"
)

const serviceName = "aggregation_flights"

type SkypickerPriceFinder struct {
	httpClient client.Interface
	clock      Clock
}

var _ PriceFinder = (*SkypickerPriceFinder)(nil)

// NewSkypickerPriceFinder expects httpClient to be rooted at the
// aggregation endpoint. A nil clock uses the system time.
func NewSkypickerPriceFinder(httpClient client.Interface, clock Clock) *SkypickerPriceFinder {
	if clock == nil {
		clock = systemClock{}
	}
	return &SkypickerPriceFinder{
		httpClient: httpClient,
		clock:      clock,
	}
}

type aggregationResponse struct {
	BestResults []struct {
		Price float64 `json:"price"`
	} `json:"best_results"`
}

// BestPrice returns the cheapest round-trip fare in USD departing between
// today and tomorrow.
func (f *SkypickerPriceFinder) BestPrice(ctx context.Context, departure, destination models.Airport) (*float64, error) {
	today := f.clock.Now()

	query := url.Values{}
	query.Set("fly_from", "airport:"+departure.Code)
	query.Set("fly_to", "airport:"+destination.Code)
	query.Set("date_from", today.Format(config.DateFormat))
	query.Set("date_to", today.AddDate(0, 0, 1).Format(config.DateFormat))
	query.Set("flight_type", "round")
	query.Set("curr", config.Currency)

	log.Debug().
		Str("from", departure.Code).
		Str("to", destination.Code).
		Msg("Fetching best price")

	resp, err := f.httpClient.Get(ctx, "",
		client.WithQuery(query),
		client.WithHeader("X-API-Version", config.APIVersion),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching prices: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response from aggregation API")
	}

	// error replies still carry a JSON object; only an undecodable body
	// is treated as a failed call
	var data aggregationResponse
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		if !resp.OK() {
			return nil, models.NewAPIError(serviceName, resp.StatusCode, string(resp.Body), err)
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !resp.OK() {
		log.Debug().Int("status", resp.StatusCode).Msg("Non-success reply from aggregation API")
	}

	// a missing key decodes to an empty slice
	if len(data.BestResults) == 0 {
		log.Debug().Str("from", departure.Code).Str("to", destination.Code).Msg("No price found")
		return nil, nil
	}

	price := data.BestResults[0].Price
	return &price, nil
}
