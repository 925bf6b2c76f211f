package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/flightcalc/flightcalc/internal/airport"
	"github.com/flightcalc/flightcalc/internal/config"
	"github.com/flightcalc/flightcalc/internal/fare"
	"github.com/flightcalc/flightcalc/internal/flight"
	"github.com/flightcalc/flightcalc/internal/models"
	"github.com/flightcalc/flightcalc/internal/report"
	"github.com/flightcalc/flightcalc/pkg/http/client"
)

// publisherFactory is replaced in tests
var publisherFactory = func(ctx context.Context, cfg *config.Config) (reportPublisher, error) {
	s3Client, err := report.NewS3Client(ctx, cfg.S3Endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating S3 client: %w", err)
	}
	return report.NewS3Publisher(s3Client, cfg.ReportBucket, cfg.ReportPrefix), nil
}

type reportPublisher interface {
	Publish(ctx context.Context, r *report.Report) (string, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fs, _, _ := newFlagSet(stderr)
		fs.Usage()
		return 1
	}

	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	resolver := newResolver(cfg, opts)
	log.Debug().
		Str("from", opts.departure).
		Strs("to", opts.destinations).
		Msg("Processing flights")

	flights, err := runResolver(ctx, resolver, opts, stdout)
	if err != nil {
		if city, ok := flight.IsNoSuchCity(err); ok {
			log.Error().Err(err).Str("city", city).Msg("No airport for city")
			fmt.Fprintf(stderr, "error: %v\n", err)
			fmt.Fprintf(stderr, "hint: no active airport matches %q\n", city)
			return 1
		}
		log.Error().Err(err).Msg("Processing flights failed")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rep := report.New(flights, time.Now())
	if opts.json {
		if err := report.WriteJSON(stdout, rep); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if !cfg.ReportUploadEnabled() {
		return 0
	}

	publisher, err := publisherFactory(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Report upload unavailable")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	key, err := publisher.Publish(ctx, rep)
	if err != nil {
		log.Error().Err(err).Str("bucket", cfg.ReportBucket).Msg("Report upload failed")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	log.Info().Str("bucket", cfg.ReportBucket).Str("key", key).Msg("Report uploaded")
	return 0
}

func newResolver(cfg *config.Config, opts *options) *flight.Resolver {
	airports := airport.NewSkypickerAirportFinder(client.New(client.Options{
		BaseURL: cfg.LocationsURL,
		Timeout: cfg.HTTPTimeout,
	}))
	fares := fare.NewSkypickerPriceFinder(client.New(client.Options{
		BaseURL: cfg.AggregationURL,
		Timeout: cfg.HTTPTimeout,
	}), nil)
	return flight.NewResolver(opts.departure, opts.destinations, airports, fares)
}

// runResolver returns every flight produced. Without --json each flight is
// printed as soon as it is priced.
func runResolver(ctx context.Context, resolver *flight.Resolver, opts *options, stdout io.Writer) ([]models.Flight, error) {
	seq, err := resolver.Process(ctx)
	if err != nil {
		return nil, err
	}

	if opts.json {
		return flight.Collect(seq)
	}

	w := report.NewTextWriter(stdout)
	var flights []models.Flight
	for f, err := range seq {
		if err != nil {
			return nil, err
		}
		if err := w.WriteFlight(f); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, nil
}
