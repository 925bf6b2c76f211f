package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/flightcalc/flightcalc/internal/models"
	"github.com/flightcalc/flightcalc/pkg/http/client"
)

const serviceName = "locations"

type SkypickerAirportFinder struct {
	httpClient client.Interface
}

var _ Finder = (*SkypickerAirportFinder)(nil)

// NewSkypickerAirportFinder expects httpClient to be rooted at the
// locations endpoint.
func NewSkypickerAirportFinder(httpClient client.Interface) *SkypickerAirportFinder {
	return &SkypickerAirportFinder{httpClient: httpClient}
}

type locationsResponse struct {
	Locations []struct {
		Name     string `json:"name"`
		Code     string `json:"code"`
		Rank     int    `json:"rank"`
		Location struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"location"`
	} `json:"locations"`
}

// FindAirport returns the top-ranked active airport matching city. The
// returned airport keeps the caller's city string rather than the one the
// API reports.
func (f *SkypickerAirportFinder) FindAirport(ctx context.Context, city string) (*models.Airport, error) {
	query := url.Values{}
	query.Set("term", city)
	query.Set("location_types", "airport")
	query.Set("active_only", "true")
	query.Set("limit", "1") // most popular airport only
	query.Set("sort", "rank")

	log.Debug().Str("city", city).Msg("Searching airport for city")

	resp, err := f.httpClient.Get(ctx, "", client.WithQuery(query))
	if err != nil {
		return nil, fmt.Errorf("fetching locations: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response from locations API")
	}

	// error replies still carry a JSON object; only an undecodable body
	// is treated as a failed call
	var data locationsResponse
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		if !resp.OK() {
			return nil, models.NewAPIError(serviceName, resp.StatusCode, string(resp.Body), err)
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !resp.OK() {
		log.Debug().Int("status", resp.StatusCode).Msg("Non-success reply from locations API")
	}

	if len(data.Locations) == 0 {
		return nil, models.NewNoSuchCityError(city)
	}

	loc := data.Locations[0]
	log.Trace().Str("city", city).Str("code", loc.Code).Int("rank", loc.Rank).Msg("FindAirport: Found airport")

	return &models.Airport{
		City: city,
		Name: loc.Name,
		Code: loc.Code,
		Rank: loc.Rank,
		Location: models.Coordinate{
			Latitude:  loc.Location.Lat,
			Longitude: loc.Location.Lon,
		},
	}, nil
}
