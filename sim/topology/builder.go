package topology

import (
	"fmt"
	"math/rand"

	"github.com/opendc-sim/opendc-sim/sim"
	"github.com/opendc-sim/opendc-sim/sim/power"
)

// defaultHostBase names hosts whose group declares no name.
const defaultHostBase = "node"

// HostID is a globally unique host identifier: one 64-bit draw from the
// caller-supplied RNG (varies host identity across differently-seeded runs)
// plus the registry's sequential component (guarantees uniqueness within a
// run even under identical draws).
type HostID struct {
	Random int64
	Seq    int64
}

func (id HostID) String() string {
	return fmt.Sprintf("%016x-%016x", uint64(id.Random), uint64(id.Seq))
}

// ProcessingUnit is one core of a host's machine model. Index is globally
// unique within the registry's scope and strictly increasing in layout order.
type ProcessingUnit struct {
	Index    int
	SpeedMHz float64
}

// MemoryUnit is the single memory unit of a host.
type MemoryUnit struct {
	SizeMiB int64
}

// MachineModel is the compiled hardware model of one host: a flattened core
// list plus one memory unit.
type MachineModel struct {
	Cores  []ProcessingUnit
	Memory MemoryUnit
}

// HostModel is a simulator-ready compute-node descriptor.
type HostModel struct {
	ID      HostID
	Name    string // <base>-<sequential index>
	Cluster int    // positional cluster-membership tag
	Machine MachineModel
	Power   power.Model
}

// Builder compiles topology specifications into flat host lists. All builds
// through one Builder draw identity from the same registry; see
// IdentityRegistry for the sharing contract.
type Builder struct {
	ids *IdentityRegistry
}

// NewBuilder creates a Builder around the given registry.
func NewBuilder(ids *IdentityRegistry) *Builder {
	return &Builder{ids: ids}
}

// Build flattens spec into host models in declaration order: clusters first,
// then each host group repeated Count times, then each CPU group's cores.
// Deterministic given the same registry state and RNG state.
func (b *Builder) Build(spec *TopologySpec, rng *rand.Rand, pm power.Model) ([]HostModel, error) {
	var hosts []HostModel
	for _, cluster := range spec.Clusters {
		clusterTag := b.ids.nextCluster()
		for _, group := range cluster.Hosts {
			if group.Count <= 0 {
				return nil, &sim.ResolutionError{
					Ref: hostBase(&group),
					Err: fmt.Errorf("host count must be positive, got %d", group.Count),
				}
			}
			for i := 0; i < group.Count; i++ {
				host, err := b.buildHost(&group, clusterTag, rng, pm)
				if err != nil {
					return nil, err
				}
				hosts = append(hosts, host)
			}
		}
	}
	return hosts, nil
}

func (b *Builder) buildHost(group *HostGroupSpec, clusterTag int, rng *rand.Rand, pm power.Model) (HostModel, error) {
	seq := b.ids.nextHost()
	id := HostID{Random: int64(rng.Uint64()), Seq: seq}

	var cores []ProcessingUnit
	for _, cpu := range group.CPUs {
		if cpu.Count <= 0 {
			return HostModel{}, &sim.ResolutionError{
				Ref: hostBase(group),
				Err: fmt.Errorf("cpu count must be positive, got %d", cpu.Count),
			}
		}
		for i := 0; i < cpu.Count; i++ {
			for c := 0; c < cpu.CoreCount; c++ {
				cores = append(cores, ProcessingUnit{
					Index:    b.ids.nextCore(),
					SpeedMHz: cpu.CoreSpeedMHz,
				})
			}
		}
	}

	return HostModel{
		ID:      id,
		Name:    fmt.Sprintf("%s-%d", hostBase(group), seq),
		Cluster: clusterTag,
		Machine: MachineModel{
			Cores:  cores,
			Memory: MemoryUnit{SizeMiB: group.Memory.SizeMiB},
		},
		Power: pm,
	}, nil
}

func hostBase(group *HostGroupSpec) string {
	if group.Name != "" {
		return group.Name
	}
	return defaultHostBase
}
