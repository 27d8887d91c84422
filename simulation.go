package shos

import (
	"sync"

	"github.com/go-kit/log"
)

// Simulation advances an orbit a fixed number of ticks, as a host animation loop would.
type Simulation struct {
	Orbit    *Orbit // As pointer because the canonical coordinates change on each tick.
	Ticks    int
	metrics  *Metrics
	logger   log.Logger
	histChan chan State
	errChan  chan error
	wg       sync.WaitGroup
}

// NewSimulation returns a new Simulation. The metrics and the logger may be nil.
// If the export configuration is useless, then no output will be written.
func NewSimulation(o *Orbit, ticks int, conf ExportConfig, m *Metrics, logger log.Logger) *Simulation {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	s := &Simulation{Orbit: o, Ticks: ticks, metrics: m, logger: log.With(logger, "subsys", "sim")}
	if !conf.IsUseless() {
		s.histChan = make(chan State, 1000) // a 1k entry buffer
		s.errChan = make(chan error, 1)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.errChan <- streamToFile(conf, s.histChan)
		}()
	}
	if m != nil {
		m.SetElements(o)
	}
	return s
}

// Run ticks the orbit and returns the last state, along with the export error if any.
// Run must only be called once.
func (s *Simulation) Run() (State, error) {
	s.logger.Log("level", "info", "status", "started", "ticks", s.Ticks, "orbit", s.Orbit)
	x, y := s.Orbit.Transform(s.Orbit.Canonical())
	last := State{Tick: 0, X: x, Y: y}
	if s.histChan != nil {
		s.histChan <- last
	}
	for tick := 1; tick <= s.Ticks; tick++ {
		x, y := s.Orbit.Tick()
		last = State{Tick: tick, X: x, Y: y}
		if s.metrics != nil {
			s.metrics.Observe(last)
		}
		if s.histChan != nil {
			s.histChan <- last
		}
	}
	cx, cy := s.Orbit.Canonical()
	s.logger.Log("level", "notice", "status", "finished", "ticks", s.Ticks, "x", last.X, "y", last.Y, "r", distance(last.X, last.Y), "canonical_x", cx, "canonical_y", cy)

	if s.histChan == nil {
		return last, nil
	}
	close(s.histChan)
	s.wg.Wait() // Don't return until we're done writing the file.
	if err := <-s.errChan; err != nil {
		s.logger.Log("level", "critical", "status", "export failed", "err", err)
		return last, err
	}
	return last, nil
}
