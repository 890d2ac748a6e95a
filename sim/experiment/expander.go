package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/opendc-sim/opendc-sim/sim"
	"github.com/opendc-sim/opendc-sim/sim/export"
	"github.com/opendc-sim/opendc-sim/sim/failure"
	"github.com/opendc-sim/opendc-sim/sim/power"
	"github.com/opendc-sim/opendc-sim/sim/topology"
)

// Scenario is one fully resolved point in the experiment's cartesian
// product: a compiled host list plus one value from each remaining axis.
// Names form the dense sequence "0".."N-1" in traversal order (topology
// outermost, export model innermost). Each scenario is independently
// executable downstream.
type Scenario struct {
	Name             string
	Topology         TopologyRef
	Hosts            []topology.HostModel
	Workload         WorkloadRef
	AllocationPolicy AllocationPolicy
	FailureModel     *failure.Model // nil when the descriptor disables injection
	CarbonTrace      string
	ExportModel      export.Spec

	// Inherited from the experiment spec.
	OutputFolder string
	Runs         int
	Seed         int64
}

// Expander turns a decoded experiment spec into the ordered scenario list.
//
// Expansion is fail-fast: the first decode, resolution, or IO error aborts
// the run and no partial scenario list is returned. One provenance write
// happens per scenario, so wall time scales with the product size.
type Expander struct {
	// Power is the power-model binding attached to every built host.
	Power power.Model
}

// NewExpander creates an Expander with the default power-model binding.
func NewExpander() *Expander {
	return &Expander{Power: power.Default}
}

// Expand computes the complete cartesian product of spec's six axes, in the
// fixed order topologies, workloads, allocation policies, failure models,
// carbon traces, export models. No deduplication: identical axis values in
// distinct tuples yield distinct scenarios.
//
// Side effects: creates <output_folder>/<name>/ if absent and writes the
// provenance log there, one record per scenario.
func (e *Expander) Expand(spec *Spec) ([]Scenario, error) {
	outDir := filepath.Join(spec.OutputFolder, spec.Name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	tracker, err := NewTracker(filepath.Join(outDir, ProvenanceFileName))
	if err != nil {
		return nil, err
	}
	defer tracker.Close()

	// One RNG and one identity registry per expansion run: host identity
	// varies with the initial seed, and host/core sequences keep increasing
	// across every topology built within this run.
	rng := sim.NewPartitionedRNG(sim.NewExperimentKey(spec.InitialSeed)).ForSubsystem(sim.SubsystemTopology)
	builder := topology.NewBuilder(topology.NewIdentityRegistry())
	topoCache := make(map[string]*topology.TopologySpec)

	sizes := []int{
		len(spec.Topologies),
		len(spec.Workloads),
		len(spec.AllocationPolicies),
		len(spec.FailureModels),
		len(spec.CarbonTraces),
		len(spec.ExportModels),
	}
	logrus.Infof("Expanding experiment %q: %d topologies x %d workloads x %d policies x %d failure models x %d carbon traces x %d export models",
		spec.Name, sizes[0], sizes[1], sizes[2], sizes[3], sizes[4], sizes[5])

	var scenarios []Scenario
	p := newProduct(sizes)
	for idx, ok := p.next(); ok; idx, ok = p.next() {
		topoRef := spec.Topologies[idx[0]]
		tspec, cached := topoCache[topoRef.File]
		if !cached {
			loaded, lerr := topology.LoadTopologySpec(topoRef.File)
			if lerr != nil {
				return nil, &sim.ResolutionError{Ref: topoRef.Name, Err: lerr}
			}
			tspec = loaded
			topoCache[topoRef.File] = loaded
		}

		hosts, err := builder.Build(tspec, rng, e.Power)
		if err != nil {
			return nil, err
		}
		fm, err := failure.FromSpec(spec.FailureModels[idx[3]])
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, Scenario{
			Name:             strconv.Itoa(len(scenarios)),
			Topology:         topoRef,
			Hosts:            hosts,
			Workload:         spec.Workloads[idx[1]],
			AllocationPolicy: spec.AllocationPolicies[idx[2]],
			FailureModel:     fm,
			CarbonTrace:      spec.CarbonTraces[idx[4]],
			ExportModel:      spec.ExportModels[idx[5]].Normalized(),
			OutputFolder:     outDir,
			Runs:             spec.Runs,
			Seed:             spec.InitialSeed,
		})
		if err := tracker.Append(spec.reduce(idx)); err != nil {
			return nil, err
		}
	}

	if err := tracker.Finalize(); err != nil {
		return nil, err
	}
	logrus.Infof("Generated %d scenarios under %s", len(scenarios), outDir)
	return scenarios, nil
}
