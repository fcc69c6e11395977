package utils

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RoundInt rounds to the nearest integer, halves to even
func RoundInt(value float64) int {
	return int(math.RoundToEven(value))
}

// MinMax returns the smallest and largest value of a non-empty slice
func MinMax(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Title upper-cases the first letter of every word and lower-cases the rest
func Title(s string) string {
	// a Caser keeps state between calls, so build one per use
	return cases.Title(language.English).String(s)
}
