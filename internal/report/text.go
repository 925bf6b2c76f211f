package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/flightcalc/flightcalc/internal/models"
)

// FormatFlight renders a flight as
// "London, Gatwick --> Paris, Charles de Gaulle Airport ::: 307.70km / 134$ = 0.44$ per km"
func FormatFlight(f models.Flight) string {
	route := fmt.Sprintf("%s, %s --> %s, %s ::: %.2fkm",
		f.Departure.City, f.Departure.Name,
		f.Destination.City, f.Destination.Name,
		f.Distance)

	if !f.HasPrice() {
		return route + " / no price"
	}

	price := strconv.FormatFloat(*f.Price, 'f', -1, 64)
	ppk, ok := f.PricePerKm()
	if !ok {
		return fmt.Sprintf("%s / %s$", route, price)
	}
	return fmt.Sprintf("%s / %s$ = %.2f$ per km", route, price, ppk)
}

type TextWriter struct {
	w io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (t *TextWriter) WriteFlight(f models.Flight) error {
	_, err := fmt.Fprintln(t.w, FormatFlight(f))
	return err
}
