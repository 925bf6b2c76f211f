package models

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Airport struct {
	City     string     `json:"city"`
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	Rank     int        `json:"rank"`
	Location Coordinate `json:"location"`
}
