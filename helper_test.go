package shos

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const testε = 1e-9

// floatEqual returns whether two floats are equal within testε.
func floatEqual(a, b float64) (bool, error) {
	if scalar.EqualWithinAbs(a, b, testε) {
		return true, nil
	}
	return false, fmt.Errorf("difference of %.12f", math.Abs(a-b))
}

// pointsEqual returns whether two planar points are equal within testε.
func pointsEqual(x0, y0, x1, y1 float64) bool {
	return scalar.EqualWithinAbs(x0, x1, testε) && scalar.EqualWithinAbs(y0, y1, testε)
}
