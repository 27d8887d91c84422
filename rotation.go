package shos

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R2D returns the counter-clockwise rotation of angle θ in the plane.
func R2D(θ float64) *mat.Dense {
	s, c := math.Sincos(θ)
	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

// MxV22 multiplies a 2x2 matrix with a planar vector. Note that there is no dimension check!
func MxV22(m mat.Matrix, x, y float64) (float64, float64) {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(2, []float64{x, y}))
	return rVec.AtVec(0), rVec.AtVec(1)
}

// planarTransform rotates and then translates canonical coordinates.
type planarTransform struct {
	rot    *mat.Dense
	tx, ty float64
}

// newFocusTransform returns the transform which maps the standard (centred,
// unrotated) ellipse frame into the caller's frame: the major axis is rotated by φ,
// and the focus at (ae, 0) is translated onto the caller's origin.
func newFocusTransform(φ, a, e float64) planarTransform {
	rot := R2D(φ)
	fx, fy := MxV22(rot, a*e, 0)
	return planarTransform{rot: rot, tx: -fx, ty: -fy}
}

// apply returns the caller frame coordinates of the provided canonical ones.
func (t planarTransform) apply(x, y float64) (float64, float64) {
	rx, ry := MxV22(t.rot, x, y)
	return rx + t.tx, ry + t.ty
}
