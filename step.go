package shos

import (
	"fmt"
	"math"
	"strings"
)

// StepRule defines how the canonical coordinates advance on each tick.
type StepRule uint8

const (
	// ReferenceStep walks linearly in x with y = b(a²-x²)/a.
	// This is not the ellipse equation (there is no square root) and, starting from
	// (a, 0), every point is outside of the ellipse with a sign-flipped y.
	ReferenceStep StepRule = iota + 1
	// EllipseStep walks the ellipse y = ±b√(1-(x/a)²) back and forth along the
	// major axis, switching halves at each vertex.
	EllipseStep
)

// DefaultStepSize is the canonical frame step in x per tick.
const DefaultStepSize = 0.01

func (r StepRule) String() string {
	switch r {
	case ReferenceStep:
		return "reference"
	case EllipseStep:
		return "ellipse"
	}
	return fmt.Sprintf("StepRule(%d)", uint8(r))
}

// StepRuleFromString returns the step rule from its name.
func StepRuleFromString(name string) (StepRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reference":
		return ReferenceStep, nil
	case "ellipse":
		return EllipseStep, nil
	}
	return 0, fmt.Errorf("unknown step rule `%s`", name)
}

// referenceStep returns the next canonical coordinates as per ReferenceStep.
func referenceStep(x, step, a, b float64) (nx, ny float64) {
	nx = x + step
	ny = (b * (a*a - nx*nx)) / a
	return
}

// ellipseStep returns the next canonical coordinates and walk direction as per
// EllipseStep. A negative direction walks the upper half toward -a.
func ellipseStep(x, dir, step, a, b float64) (nx, ny, ndir float64) {
	nx = clamp(x+dir*step, a)
	ndir = dir
	if (dir < 0 && nx == -a) || (dir > 0 && nx == a) {
		ndir = -dir
	}
	// The upper half is walked toward -a, the lower one toward +a.
	ny = b * math.Sqrt(1-(nx/a)*(nx/a))
	if dir > 0 {
		ny = -ny
	}
	return
}
