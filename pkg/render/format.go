package render

import (
	"math"
	"strconv"
)

// Round rounds v to the given number of decimal places for display.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Fixed formats v with exactly places decimals.
func Fixed(v float64, places int) string {
	return strconv.FormatFloat(Round(v, places), 'f', places, 64)
}
