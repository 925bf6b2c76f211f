package airport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightcalc/flightcalc/internal/models"
	"github.com/flightcalc/flightcalc/internal/testutils"
	"github.com/flightcalc/flightcalc/pkg/http/client"
)

func newTestFinder(t *testing.T) *SkypickerAirportFinder {
	t.Helper()

	srv := testutils.NewSkypickerServer()
	t.Cleanup(srv.Close)

	httpClient := client.New(client.Options{
		BaseURL: srv.LocationsURL(),
		Timeout: 5 * time.Second,
	})
	return NewSkypickerAirportFinder(httpClient)
}

func TestSkypickerAirportFinder_FindAirport(t *testing.T) {
	finder := newTestFinder(t)

	tests := []struct {
		name    string
		city    string
		want    *models.Airport
		wantErr string
	}{
		{
			name: "london",
			city: "london",
			want: &models.Airport{
				City:     "london",
				Name:     "Gatwick",
				Code:     "LGW",
				Rank:     2,
				Location: models.Coordinate{Latitude: 51.148056, Longitude: -0.190278},
			},
		},
		{
			name: "paris",
			city: "paris",
			want: &models.Airport{
				City:     "paris",
				Name:     "Charles de Gaulle Airport",
				Code:     "CDG",
				Rank:     1,
				Location: models.Coordinate{Latitude: 49.009722, Longitude: 2.547778},
			},
		},
		{
			name:    "empty city name",
			city:    "",
			wantErr: " city not found",
		},
		{
			name:    "response without locations field",
			city:    "abra_cadabra",
			wantErr: "abra_cadabra city not found",
		},
		{
			name:    "unknown city",
			city:    "atlantis",
			wantErr: "atlantis city not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := finder.FindAirport(context.Background(), tt.city)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.EqualError(t, err, tt.wantErr)

				var noCity *models.NoSuchCityError
				require.True(t, errors.As(err, &noCity))
				assert.Equal(t, tt.city, noCity.City)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkypickerAirportFinder_KeepsCallerCity(t *testing.T) {
	finder := NewSkypickerAirportFinder(&client.Client{
		GetFunc: func(_ context.Context, _ string, _ ...client.RequestOption) (*client.Response, error) {
			return &client.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"locations":[{"name":"Gatwick","code":"LGW","rank":2,"city":{"name":"London"},"location":{"lat":51.148056,"lon":-0.190278}}]}`),
			}, nil
		},
	})

	got, err := finder.FindAirport(context.Background(), "LoNdOn")
	require.NoError(t, err)
	assert.Equal(t, "LoNdOn", got.City)
}

func TestSkypickerAirportFinder_SameCityTwice(t *testing.T) {
	finder := newTestFinder(t)

	first, err := finder.FindAirport(context.Background(), "berlin")
	require.NoError(t, err)
	second, err := finder.FindAirport(context.Background(), "berlin")
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestSkypickerAirportFinder_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var apiErr *models.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Equal(t, "locations", apiErr.Service)
			},
		},
		{
			name: "error reply without locations field",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"term is required"}`))
			},
			check: func(t *testing.T, err error) {
				var noCity *models.NoSuchCityError
				require.True(t, errors.As(err, &noCity))
				assert.EqualError(t, err, "london city not found")
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"locations": [`))
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decoding response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			finder := NewSkypickerAirportFinder(client.New(client.Options{BaseURL: srv.URL}))
			got, err := finder.FindAirport(context.Background(), "london")

			require.Error(t, err)
			assert.Nil(t, got)
			tt.check(t, err)
		})
	}
}

func TestSkypickerAirportFinder_TransportError(t *testing.T) {
	transportErr := errors.New("connection refused")
	finder := NewSkypickerAirportFinder(&client.Client{
		GetFunc: func(_ context.Context, _ string, _ ...client.RequestOption) (*client.Response, error) {
			return nil, transportErr
		},
	})

	_, err := finder.FindAirport(context.Background(), "london")
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
}
