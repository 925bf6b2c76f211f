package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

const (
	LocationsPath   = "/locations"
	AggregationPath = "/aggregation_flights"
)

// LocationFixtures maps a search term to the raw locations payload
var LocationFixtures = map[string]string{
	"london": `{"locations":[{"id":"LGW","name":"Gatwick","code":"LGW","rank":2,"location":{"lat":51.148056,"lon":-0.190278},"type":"airport"}]}`,
	"paris":  `{"locations":[{"id":"CDG","name":"Charles de Gaulle Airport","code":"CDG","rank":1,"location":{"lat":49.009722,"lon":2.547778},"type":"airport"}]}`,
	"berlin": `{"locations":[{"id":"TXL","name":"Berlin Tegel","code":"TXL","rank":5,"location":{"lat":52.559722,"lon":13.287778},"type":"airport"}]}`,
	"rome":   `{"locations":[{"id":"FCO","name":"Leonardo da Vinci–Fiumicino Airport","code":"FCO","rank":3,"location":{"lat":41.8,"lon":12.25},"type":"airport"}]}`,
	"oslo":   `{"locations":[{"id":"OSL","name":"Oslo Gardermoen","code":"OSL","rank":4,"location":{"lat":60.197222,"lon":11.100278},"type":"airport"}]}`,
	"":       `{"locations":[],"meta":{"locale":{"code":"en-US"}}}`,
	// no locations field at all
	"abra_cadabra": `{"meta":{"locale":{"code":"en-US"}}}`,
}

// PriceFixtures maps "<fly_from>-<fly_to>" to the raw aggregation payload
var PriceFixtures = map[string]string{
	"airport:LGW-airport:CDG": `{"best_results":[{"price":134,"date":"2026-10-19"},{"price":150,"date":"2026-10-20"}]}`,
	"airport:LGW-airport:TXL": `{"best_results":[{"price":230,"date":"2026-10-19"}]}`,
	"airport:LGW-airport:FCO": `{"best_results":[]}`,
	"airport:LGW-airport:OSL": `{"currency":"USD"}`,
}

// SkypickerServer is a fake of both Skypicker endpoints backed by fixtures
type SkypickerServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewSkypickerServer starts a fake API. Callers must Close it.
func NewSkypickerServer() *SkypickerServer {
	s := &SkypickerServer{}
	mux := http.NewServeMux()
	mux.HandleFunc(LocationsPath, s.handleLocations)
	mux.HandleFunc(AggregationPath, s.handleAggregation)
	s.Server = httptest.NewServer(mux)
	return s
}

func (s *SkypickerServer) LocationsURL() string {
	return s.URL + LocationsPath
}

func (s *SkypickerServer) AggregationURL() string {
	return s.URL + AggregationPath
}

// Requests returns every request received so far, in order
func (s *SkypickerServer) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

// RequestCount returns the number of requests made to path
func (s *SkypickerServer) RequestCount(path string) int {
	count := 0
	for _, r := range s.Requests() {
		if r.URL.Path == path {
			count++
		}
	}
	return count
}

func (s *SkypickerServer) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.Clone(r.Context()))
}

func (s *SkypickerServer) handleLocations(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	q := r.URL.Query()
	if q.Get("location_types") != "airport" || q.Get("active_only") != "true" ||
		q.Get("limit") != "1" || q.Get("sort") != "rank" {
		http.Error(w, `{"error":"unexpected query"}`, http.StatusBadRequest)
		return
	}

	body, ok := LocationFixtures[q.Get("term")]
	if !ok {
		body = `{"locations":[]}`
	}
	writeJSON(w, body)
}

func (s *SkypickerServer) handleAggregation(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	q := r.URL.Query()
	if r.Header.Get("X-API-Version") != "1" {
		http.Error(w, `{"error":"missing version header"}`, http.StatusBadRequest)
		return
	}
	if q.Get("flight_type") != "round" || q.Get("curr") != "USD" ||
		q.Get("date_from") == "" || q.Get("date_to") == "" {
		http.Error(w, `{"error":"unexpected query"}`, http.StatusBadRequest)
		return
	}

	body, ok := PriceFixtures[q.Get("fly_from")+"-"+q.Get("fly_to")]
	if !ok {
		http.Error(w, `{"error":"no such route"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, body)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
