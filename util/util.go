package util

import (
	"math/rand"
)

// RandomiseSaturation picks a value uniformly from [min, max).
func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a look-up table that eases up to a peak halfway along
// and back down again.
func GenerateLut(length int, easing func(float64) float64) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := easing(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}
