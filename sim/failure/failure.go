// Package failure defines failure-model descriptors and the factory that
// turns a descriptor into a constructed instance. Event sampling happens in
// the simulation engine, not here.
package failure

import (
	"fmt"
	"time"

	"github.com/opendc-sim/opendc-sim/sim"
)

// Spec is the declarative failure-model descriptor carried by an experiment
// axis: the mean interval between injected failures, in seconds. An interval
// of zero disables failure injection for the scenario.
type Spec struct {
	Interval float64 `yaml:"interval" json:"interval"`
}

// Model is a constructed failure-injection instance ready for the engine.
type Model struct {
	MTBF time.Duration
}

// FromSpec resolves a descriptor into a Model. Returns (nil, nil) for a zero
// interval (no failure injection) and a ResolutionError for a negative one.
func FromSpec(spec Spec) (*Model, error) {
	if spec.Interval < 0 {
		return nil, &sim.ResolutionError{
			Ref: "failure model",
			Err: fmt.Errorf("interval must be non-negative, got %f", spec.Interval),
		}
	}
	if spec.Interval == 0 {
		return nil, nil
	}
	return &Model{MTBF: time.Duration(spec.Interval * float64(time.Second))}, nil
}
