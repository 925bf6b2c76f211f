package flight

import (
	"errors"

	"github.com/flightcalc/flightcalc/internal/models"
)

// ErrNoDestinationCities is returned when the destination list is empty
var ErrNoDestinationCities = errors.New("no destination cities provided")

// NoSuchCityError is returned when a departure or destination city has no airport
type NoSuchCityError = models.NoSuchCityError

// IsNoSuchCity reports whether err is a NoSuchCityError and returns the offending city
func IsNoSuchCity(err error) (string, bool) {
	var target *NoSuchCityError
	if errors.As(err, &target) {
		return target.City, true
	}
	return "", false
}
