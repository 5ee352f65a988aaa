// Package testutil provides deterministic operand generators for tests.
package testutil

import "math/rand"

// Noise returns length pseudo-random values in [-amplitude, amplitude],
// reproducible for a given seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns 0, step, 2*step, ... of the given length.
func Ramp(step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out
}

// Constant returns a slice of the given length filled with value.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
