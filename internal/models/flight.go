package models

// Flight is a priced route between two airports. Price is nil when the
// price source had no fare for the date window.
type Flight struct {
	Departure   Airport  `json:"departure"`
	Destination Airport  `json:"destination"`
	Distance    float64  `json:"distance"`
	Price       *float64 `json:"price,omitempty"`
}

// HasPrice reports whether a fare was found for the route
func (f Flight) HasPrice() bool {
	return f.Price != nil
}

// PricePerKm returns price divided by distance in km. The second value is
// false when there is no price or the airports share a location.
func (f Flight) PricePerKm() (float64, bool) {
	if f.Price == nil || f.Distance <= 0 {
		return 0, false
	}
	return *f.Price / f.Distance, true
}
