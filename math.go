package shos

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
	// distanceε is the tolerance used when comparing distances.
	distanceε = 1e-9
)

// pythagorean returns the hypotenuse of the right triangle of sides a and b.
func pythagorean(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

// Perihelion returns the closest approach distance to the focus for a body
// starting at the provided offsets from that focus.
// A body starting on the major axis (y = 0) is exactly |x| away.
func Perihelion(x, y float64) float64 {
	if y == 0 {
		return math.Abs(x)
	}
	return pythagorean(math.Abs(y), math.Abs(x))
}

// Aphelion returns the farthest distance to the focus given the perihelion and
// the semi major axis (rP + rA = 2a).
func Aphelion(rP, a float64) float64 {
	return 2*a - rP
}

// Eccentricity returns the eccentricity from the radii.
func Eccentricity(rP, rA float64) float64 {
	return (rA - rP) / (rA + rP)
}

// SemiMinorAxis returns the semi minor axis.
func SemiMinorAxis(a, e float64) float64 {
	return a * math.Sqrt(1-e*e)
}

// OrientationAngle returns the angle of the major axis from the initial offsets,
// via the law of cosines solving for the angle opposite to |x|.
// NOTE: A degenerate triangle (y = 0 or x = y = 0) returns NaN.
func OrientationAngle(x, y float64) float64 {
	sideA := math.Abs(x)
	sideC := math.Abs(y)
	sideB := pythagorean(sideA, sideC)
	return math.Acos((sideB*sideB + sideC*sideC - sideA*sideA) / (2 * sideB * sideC))
}

// Heading returns the direction of the initial offsets from the focus, measured
// counter-clockwise from the x axis, given the orientation angle θ of those offsets.
// θ is measured from the y leg of the triangle, hence the quadrant is restored from
// the signs of x and y. On the x axis θ is not finite but the direction is still known.
func Heading(θ, x, y float64) float64 {
	if !isFinite(θ) {
		if y == 0 && x != 0 {
			if x < 0 {
				return math.Pi
			}
			return 0
		}
		return θ
	}
	β := math.Pi/2 - θ
	switch {
	case x < 0 && y < 0:
		return β - math.Pi
	case x < 0:
		return math.Pi - β
	case y < 0:
		return -β
	}
	return β
}

// isFinite returns whether the value is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clamp returns v bounded to [-limit, limit], snapping values within distanceε
// of either bound onto it.
func clamp(v, limit float64) float64 {
	if v >= limit || scalar.EqualWithinAbs(v, limit, distanceε) {
		return limit
	}
	if v <= -limit || scalar.EqualWithinAbs(v, -limit, distanceε) {
		return -limit
	}
	return v
}

// Rad2deg converts radians to degrees in [0, 360).
func Rad2deg(a float64) float64 {
	d := math.Mod(a/deg2rad, 360)
	if d < 0 {
		d += 360
	}
	return d
}
