package shos

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-kit/log"
)

// ErrInvalidOrbitGeometry is returned when the body would start outside of its own orbit.
var ErrInvalidOrbitGeometry = errors.New("invalid orbit geometry")

// Config holds the optional parameters of an Orbit.
type Config struct {
	Step   float64    // Canonical step size in x, zero means DefaultStepSize.
	Rule   StepRule   // Defaults to ReferenceStep.
	Logger log.Logger // Receives the construction diagnostics, may be nil.
}

// Orbit defines the elliptical orbit of a single body around a fixed focus.
type Orbit struct {
	radius    float64
	rP, rA, e float64
	a, b, θ   float64
	φ         float64    // Heading of the initial position, rotates the major axis.
	std       [2]float64 // Canonical (centred, unrotated) coordinates.
	dir       float64    // Walk direction of EllipseStep.
	step      float64
	rule      StepRule
	frame     planarTransform
}

// NewOrbit is the same as NewCustomOrbit with the reference step rule and size.
func NewOrbit(radius, x, y, a float64) (*Orbit, error) {
	return NewCustomOrbit(radius, x, y, a, Config{})
}

// NewCustomOrbit returns a new Orbit of a body of the provided radius starting at
// (x, y) from the focus, with the provided semi major axis.
// Returns an error wrapping ErrInvalidOrbitGeometry if the perihelion is not
// strictly smaller than the semi major axis.
func NewCustomOrbit(radius, x, y, a float64, conf Config) (*Orbit, error) {
	logger := conf.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if err := validate(x, y, a); err != nil {
		return nil, err
	}
	step := conf.Step
	if step == 0 {
		step = DefaultStepSize
	}
	if !isFinite(step) || step < 0 {
		return nil, fmt.Errorf("invalid step size %f", step)
	}
	rule := conf.Rule
	if rule == 0 {
		rule = ReferenceStep
	}
	if rule != ReferenceStep && rule != EllipseStep {
		return nil, fmt.Errorf("unsupported step rule %s", rule)
	}

	rP := Perihelion(x, y)
	rA := Aphelion(rP, a)
	e := Eccentricity(rP, rA)
	b := SemiMinorAxis(a, e)
	θ := OrientationAngle(x, y)
	φ := Heading(θ, x, y)

	logger.Log("level", "debug", "subsys", "orbit", "aphelion", rA, "perihelion", rP, "eccentricity", e, "semi_minor_axis", b, "angle(rad)", θ, "heading(rad)", φ)
	if !isFinite(θ) {
		logger.Log("level", "warning", "subsys", "orbit", "message", "degenerate initial position, angle is not finite", "x", x, "y", y)
	}

	return &Orbit{
		radius: radius,
		rP:     rP,
		rA:     rA,
		e:      e,
		a:      a,
		b:      b,
		θ:      θ,
		φ:      φ,
		std:    [2]float64{a, 0},
		dir:    -1,
		step:   step,
		rule:   rule,
		frame:  newFocusTransform(φ, a, e),
	}, nil
}

func validate(x, y, a float64) error {
	// Also rejects a NaN perihelion or semi major axis.
	if rP := Perihelion(x, y); !(rP < a) {
		return fmt.Errorf("%w: perihelion %f cannot be larger than the semi major axis %f", ErrInvalidOrbitGeometry, rP, a)
	}
	return nil
}

// Radius returns the radius of the orbiting body.
func (o *Orbit) Radius() float64 {
	return o.radius
}

// Rule returns the step rule of this orbit.
func (o *Orbit) Rule() StepRule {
	return o.rule
}

// Elements returns the elements derived at construction.
func (o *Orbit) Elements() (rP, rA, e, a, b, θ float64) {
	return o.rP, o.rA, o.e, o.a, o.b, o.θ
}

// Canonical returns the current coordinates in the standard ellipse frame.
func (o *Orbit) Canonical() (x, y float64) {
	return o.std[0], o.std[1]
}

// Tick advances the body by one step and returns its position in the caller's frame.
// Tick is not safe for concurrent use.
func (o *Orbit) Tick() (x, y float64) {
	var nx, ny float64
	switch o.rule {
	case EllipseStep:
		nx, ny, o.dir = ellipseStep(o.std[0], o.dir, o.step, o.a, o.b)
	default:
		nx, ny = referenceStep(o.std[0], o.step, o.a, o.b)
	}
	o.std = [2]float64{nx, ny}
	return o.Transform(nx, ny)
}

// Transform rotates the canonical coordinates such that the right vertex points
// toward the initial position and translates them such that the focus is at the
// caller's origin. Hence Transform(a, 0) is the initial position.
func (o *Orbit) Transform(x, y float64) (float64, float64) {
	return o.frame.apply(x, y)
}

// String implements the stringer interface.
func (o *Orbit) String() string {
	θ := "NaN"
	if isFinite(o.θ) {
		θ = fmt.Sprintf("%.3f", Rad2deg(o.θ))
	}
	return fmt.Sprintf("a=%.3f b=%.3f e=%.4f rP=%.3f rA=%.3f θ=%s φ=%.3f (%s)", o.a, o.b, o.e, o.rP, o.rA, θ, Rad2deg(o.φ), o.rule)
}

// distance returns the distance of the caller frame coordinates to the focus.
func distance(x, y float64) float64 {
	return math.Hypot(x, y)
}
