package domain

import "math"

// Destination is a catalog entry: a uniquely named place and the cost of a trip there.
// Any string is a valid name, including the empty string.
type Destination struct {
	Name string
	Cost float64
}

// ValidCost reports whether cost is a finite number strictly greater than zero.
func ValidCost(cost float64) bool {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return false
	}
	return cost > 0
}
