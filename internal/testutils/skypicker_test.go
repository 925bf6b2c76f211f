package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesAreValidJSON(t *testing.T) {
	for term, body := range LocationFixtures {
		assert.True(t, json.Valid([]byte(body)), "location fixture %q", term)
	}
	for route, body := range PriceFixtures {
		assert.True(t, json.Valid([]byte(body)), "price fixture %q", route)
	}
}

func TestSkypickerServer(t *testing.T) {
	srv := NewSkypickerServer()
	defer srv.Close()

	query := url.Values{
		"term":           {"paris"},
		"location_types": {"airport"},
		"active_only":    {"true"},
		"limit":          {"1"},
		"sort":           {"rank"},
	}
	resp, err := http.Get(srv.LocationsURL() + "?" + query.Encode())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, LocationFixtures["paris"], string(body))

	// aggregation without the version header is rejected
	resp, err = http.Get(srv.AggregationURL())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, 1, srv.RequestCount(LocationsPath))
	assert.Equal(t, 1, srv.RequestCount(AggregationPath))
}
