package flight

import (
	"context"
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"

	"github.com/flightcalc/flightcalc/internal/airport"
	"github.com/flightcalc/flightcalc/internal/fare"
	"github.com/flightcalc/flightcalc/internal/geo"
	"github.com/flightcalc/flightcalc/internal/models"
)

// Resolver prices flights from one departure city to each destination city
type Resolver struct {
	Departure    string
	Destinations []string
	Airports     airport.Finder
	Fares        fare.PriceFinder
}

func NewResolver(departure string, destinations []string, airports airport.Finder, fares fare.PriceFinder) *Resolver {
	return &Resolver{
		Departure:    departure,
		Destinations: destinations,
		Airports:     airports,
		Fares:        fares,
	}
}

// ResolveAirport returns the most popular airport for city
func (r *Resolver) ResolveAirport(ctx context.Context, city string) (models.Airport, error) {
	a, err := r.Airports.FindAirport(ctx, city)
	if err != nil {
		return models.Airport{}, err
	}
	if a == nil {
		return models.Airport{}, models.NewNoSuchCityError(city)
	}
	return *a, nil
}

// ResolveDestinations resolves every city in order. The first failure
// aborts the whole lookup.
func (r *Resolver) ResolveDestinations(ctx context.Context, cities []string) ([]models.Airport, error) {
	if len(cities) == 0 {
		return nil, ErrNoDestinationCities
	}

	airports := make([]models.Airport, 0, len(cities))
	for _, city := range cities {
		a, err := r.ResolveAirport(ctx, city)
		if err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, nil
}

// BestPrice returns the best fare for the route, or nil when there is none
func (r *Resolver) BestPrice(ctx context.Context, departure, destination models.Airport) (*float64, error) {
	price, err := r.Fares.BestPrice(ctx, departure, destination)
	if err != nil {
		return nil, fmt.Errorf("best price %s-%s: %w", departure.Code, destination.Code, err)
	}
	return price, nil
}

// Process resolves the departure and then every destination before
// returning, so an unknown city fails here rather than during iteration.
// The sequence yields one flight per destination in input order and
// fetches each price only when that element is requested. A price lookup
// error is yielded once and ends the sequence.
func (r *Resolver) Process(ctx context.Context) (iter.Seq2[models.Flight, error], error) {
	departure, err := r.ResolveAirport(ctx, r.Departure)
	if err != nil {
		return nil, err
	}

	destinations, err := r.ResolveDestinations(ctx, r.Destinations)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("departure", departure.Code).
		Int("destination_count", len(destinations)).
		Msg("Resolved airports")

	return func(yield func(models.Flight, error) bool) {
		for _, destination := range destinations {
			distance := geo.Distance(departure.Location, destination.Location)

			price, err := r.BestPrice(ctx, departure, destination)
			if err != nil {
				yield(models.Flight{}, err)
				return
			}

			f := models.Flight{
				Departure:   departure,
				Destination: destination,
				Distance:    distance,
				Price:       price,
			}
			if !yield(f, nil) {
				return
			}
		}
	}, nil
}

// Collect drains seq, stopping at the first error
func Collect(seq iter.Seq2[models.Flight, error]) ([]models.Flight, error) {
	var flights []models.Flight
	for f, err := range seq {
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, nil
}
