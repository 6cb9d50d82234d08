// Package session drives a single binary orbit: it owns the phase, the
// active frame, the body trails and the run metrics. A Session is not safe
// for concurrent use.
package session

import (
	"context"
	"fmt"

	"github.com/san-kum/binarylab/internal/dynamo"
	"github.com/san-kum/binarylab/internal/metrics"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/trail"
)

// Observer is notified after every tick.
type Observer interface {
	OnStep(s orbit.State, pos orbit.Positions)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s orbit.State, pos orbit.Positions)

func (f ObserverFunc) OnStep(s orbit.State, pos orbit.Positions) { f(s, pos) }

type Session struct {
	params    orbit.Params
	frame     orbit.Frame
	state     orbit.State
	last      orbit.Positions
	trails    *trail.Set
	metrics   []metrics.Metric
	observers []Observer
}

// Result summarises a headless run.
type Result struct {
	Params      orbit.Params
	Frame       orbit.Frame
	Final       orbit.Positions
	State       orbit.State
	StepsTaken  int
	Separations []float64
	Metrics     map[string]float64
}

func New(params orbit.Params, frame orbit.Frame, capacity int) (*Session, error) {
	s := &Session{
		trails:    trail.NewSet(capacity),
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
	if err := s.Configure(params, frame); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }
func (s *Session) AddObserver(o Observer)     { s.observers = append(s.observers, o) }

// Configure replaces the parameters and frame. Any call, even with unchanged
// values, restarts the orbit and discards all trails.
func (s *Session) Configure(params orbit.Params, frame orbit.Frame) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if !frame.Valid() {
		return fmt.Errorf("%w: %v", dynamo.ErrUnknownFrame, frame)
	}
	s.params = params
	s.frame = frame
	s.Reset()
	return nil
}

// Reset restarts the orbit at theta = 0 and clears trails and metrics.
func (s *Session) Reset() {
	s.state = orbit.State{}
	s.trails.Reset()
	for _, m := range s.metrics {
		m.Reset()
	}
	s.last = s.positions()
}

func (s *Session) positions() orbit.Positions {
	rel := orbit.RelativePosition(s.state.Theta, s.params)
	return orbit.Transform(rel, s.params.Mu(), s.state.Theta, s.frame, s.state.Time)
}

// Step advances one tick of dt, records trails and notifies observers.
func (s *Session) Step(dt float64) orbit.Positions {
	s.state = orbit.Propagate(s.state, dt, s.params)
	pos := s.positions()
	s.trails.Record(pos)

	for _, m := range s.metrics {
		m.Observe(s.params, s.state, pos)
	}
	for _, o := range s.observers {
		o.OnStep(s.state, pos)
	}

	s.last = pos
	return pos
}

// Run performs up to steps ticks, stopping early if ctx is cancelled. The
// partial result is returned alongside ctx.Err() in that case.
func (s *Session) Run(ctx context.Context, dt float64, steps int) (*Result, error) {
	if !(dt > 0) {
		return nil, dynamo.NewParameterError("dt", dt, "must be positive")
	}
	if steps <= 0 {
		return nil, dynamo.NewParameterError("steps", float64(steps), "must be positive")
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Params:      s.params,
		Frame:       s.frame,
		Separations: make([]float64, 0, steps),
		Metrics:     make(map[string]float64),
	}

	var err error
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		if err != nil {
			break
		}

		s.Step(dt)
		result.StepsTaken++
		result.Separations = append(result.Separations, orbit.Separation(s.state.Theta, s.params))
	}

	result.Final = s.last
	result.State = s.state
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, err
}

func (s *Session) Params() orbit.Params       { return s.params }
func (s *Session) Frame() orbit.Frame         { return s.frame }
func (s *Session) State() orbit.State         { return s.state }
func (s *Session) Positions() orbit.Positions { return s.last }
func (s *Session) Trails() *trail.Set         { return s.trails }
