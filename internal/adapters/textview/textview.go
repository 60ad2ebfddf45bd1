// Package textview renders the catalog and roster as plain text for terminals and
// text/plain responses.
package textview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
)

const (
	NoDestinations = "No destination is available.$"
	NoTravelers    = "No traveler is available."
)

// WriteDestinations writes one "<name>: <cost>$" line per destination, in the order given.
func WriteDestinations(w io.Writer, ds []domain.Destination) error {
	if len(ds) == 0 {
		_, err := fmt.Fprintln(w, NoDestinations)
		return err
	}
	for _, d := range ds {
		if _, err := fmt.Fprintf(w, "%s: %s$\n", d.Name, FormatCost(d.Cost)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTravelers writes one numbered line per traveler, marking VIPs.
func WriteTravelers(w io.Writer, ts []domain.TravelerName) error {
	if len(ts) == 0 {
		_, err := fmt.Fprintln(w, NoTravelers)
		return err
	}
	for i, t := range ts {
		marker := ""
		if t.VIP() {
			marker = " (VIP)"
		}
		if _, err := fmt.Fprintf(w, "%d. %s%s\n", i+1, t, marker); err != nil {
			return err
		}
	}
	return nil
}

// FormatCost prints whole costs without a fractional part.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
