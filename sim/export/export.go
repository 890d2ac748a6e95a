// Package export defines export-model descriptors: which cadence the engine
// flushes scenario metrics at.
package export

// DefaultIntervalSeconds is applied when a spec omits the export interval.
const DefaultIntervalSeconds = 300

// Spec is a declarative export-model descriptor.
type Spec struct {
	Name            string `yaml:"name,omitempty" json:"name,omitempty"`
	IntervalSeconds int64  `yaml:"interval,omitempty" json:"interval,omitempty"`
}

// Normalized returns a copy with defaults applied.
func (s Spec) Normalized() Spec {
	if s.IntervalSeconds <= 0 {
		s.IntervalSeconds = DefaultIntervalSeconds
	}
	return s
}
