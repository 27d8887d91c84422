package shos

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

const (
	defaultTicks = 1000
)

// Scenario defines a single orbit simulation as read from a configuration file.
type Scenario struct {
	Radius, X, Y, SMA float64
	Ticks             int
	Step              float64 // Strictly positive, defaults to DefaultStepSize.
	Rule              StepRule
	CSVPath           string // No states are exported if empty.
	MetricsPath       string // No metrics are written if empty.
}

// LoadScenario reads the scenario from the provided configuration file (TOML, YAML or JSON).
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("simulation.ticks", defaultTicks)
	v.SetDefault("simulation.step", DefaultStepSize)
	v.SetDefault("simulation.rule", ReferenceStep.String())
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return scenarioFromViper(v)
}

func scenarioFromViper(v *viper.Viper) (Scenario, error) {
	if !v.IsSet("planet.sma") {
		return Scenario{}, errors.New("`planet.sma` is missing")
	}
	rule, err := StepRuleFromString(v.GetString("simulation.rule"))
	if err != nil {
		return Scenario{}, err
	}
	s := Scenario{
		Radius:      v.GetFloat64("planet.radius"),
		X:           v.GetFloat64("planet.x"),
		Y:           v.GetFloat64("planet.y"),
		SMA:         v.GetFloat64("planet.sma"),
		Ticks:       v.GetInt("simulation.ticks"),
		Step:        v.GetFloat64("simulation.step"),
		Rule:        rule,
		CSVPath:     v.GetString("output.csv"),
		MetricsPath: v.GetString("output.metrics"),
	}
	if s.Ticks < 0 {
		return Scenario{}, fmt.Errorf("`simulation.ticks` must be positive, got %d", s.Ticks)
	}
	if !(s.Step > 0) {
		return Scenario{}, fmt.Errorf("`simulation.step` must be strictly positive, got %f", s.Step)
	}
	return s, nil
}

// Orbit returns the orbit of this scenario.
func (s Scenario) Orbit(logger log.Logger) (*Orbit, error) {
	return NewCustomOrbit(s.Radius, s.X, s.Y, s.SMA, Config{Step: s.Step, Rule: s.Rule, Logger: logger})
}
