// SPDX-License-Identifier: MIT

package fluctuation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Spectrum is the result of Analyze: 3N exponents in descending order,
// the time step used for normalization and the number of layers.
type Spectrum struct {
	Exponents []float64 `json:"exponents" yaml:"exponents"`
	Tau       float64   `json:"tau" yaml:"tau"`
	Layers    int       `json:"layers" yaml:"layers"`
}

// Len returns the number of exponents (3N).
func (s *Spectrum) Len() int { return len(s.Exponents) }

// Max returns the largest exponent, NaN for an empty spectrum.
func (s *Spectrum) Max() float64 {
	if len(s.Exponents) == 0 {
		return math.NaN()
	}

	return s.Exponents[0]
}

// Sum returns the sum of all exponents (the mean log volume growth rate).
func (s *Spectrum) Sum() float64 {
	return floats.Sum(s.Exponents)
}
