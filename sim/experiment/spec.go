package experiment

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opendc-sim/opendc-sim/sim"
	"github.com/opendc-sim/opendc-sim/sim/export"
	"github.com/opendc-sim/opendc-sim/sim/failure"
)

// Spec is the declarative, multi-valued experiment description. Each of the
// six axis collections contributes one dimension to the cartesian product
// computed by Expand. Immutable once decoded.
// Loaded from YAML via LoadExperimentSpec(path).
type Spec struct {
	ID           string `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	OutputFolder string `yaml:"output_folder" json:"output_folder"`
	InitialSeed  int64  `yaml:"initial_seed" json:"initial_seed"`
	Runs         int    `yaml:"runs" json:"runs"`

	Topologies         []TopologyRef      `yaml:"topologies" json:"topologies"`
	Workloads          []WorkloadRef      `yaml:"workloads" json:"workloads"`
	AllocationPolicies []AllocationPolicy `yaml:"allocation_policies" json:"allocation_policies"`
	FailureModels      []failure.Spec     `yaml:"failure_models" json:"failure_models"`
	CarbonTraces       []string           `yaml:"carbon_traces" json:"carbon_traces"`
	ExportModels       []export.Spec      `yaml:"export_models" json:"export_models"`
}

// TopologyRef names a topology spec file to be compiled per scenario.
type TopologyRef struct {
	Name string `yaml:"name" json:"name"`
	File string `yaml:"file" json:"file"`
}

// WorkloadRef names a workload trace consumed by the simulation engine.
type WorkloadRef struct {
	Name string `yaml:"name" json:"name"`
	File string `yaml:"file" json:"file"`
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
}

// AllocationPolicy selects the placement policy descriptor for a scenario.
// The policy implementation lives outside this core.
type AllocationPolicy struct {
	Policy string `yaml:"policy" json:"policy"`
}

// LoadExperimentSpec reads and parses a YAML experiment specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected. The decoded
// spec is structurally validated; any violation is reported as a DecodeError.
func LoadExperimentSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &sim.DecodeError{Path: path, Err: err}
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, &sim.DecodeError{Path: path, Err: err}
	}
	if err := spec.Validate(); err != nil {
		return nil, &sim.DecodeError{Path: path, Err: err}
	}
	return &spec, nil
}

// Validate checks the structural invariants of the spec: required scalar
// fields present and every axis non-empty. No cross-field semantics.
func (s *Spec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("experiment id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("experiment name is required")
	}
	if s.OutputFolder == "" {
		return fmt.Errorf("output_folder is required")
	}
	if s.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", s.Runs)
	}
	for _, axis := range []struct {
		name string
		size int
	}{
		{"topologies", len(s.Topologies)},
		{"workloads", len(s.Workloads)},
		{"allocation_policies", len(s.AllocationPolicies)},
		{"failure_models", len(s.FailureModels)},
		{"carbon_traces", len(s.CarbonTraces)},
		{"export_models", len(s.ExportModels)},
	} {
		if axis.size == 0 {
			return fmt.Errorf("axis %s must have at least one entry", axis.name)
		}
	}
	return nil
}

// reduce returns the single-combination reduction of s for the given axis
// index tuple: a copy where every axis holds exactly the one selected value.
func (s *Spec) reduce(idx []int) *Spec {
	r := *s
	r.Topologies = []TopologyRef{s.Topologies[idx[0]]}
	r.Workloads = []WorkloadRef{s.Workloads[idx[1]]}
	r.AllocationPolicies = []AllocationPolicy{s.AllocationPolicies[idx[2]]}
	r.FailureModels = []failure.Spec{s.FailureModels[idx[3]]}
	r.CarbonTraces = []string{s.CarbonTraces[idx[4]]}
	r.ExportModels = []export.Spec{s.ExportModels[idx[5]]}
	return &r
}
