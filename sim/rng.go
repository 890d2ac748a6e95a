package sim

import (
	"hash/fnv"
	"math/rand"
)

// === ExperimentKey ===

// ExperimentKey uniquely identifies a reproducible experiment expansion.
// Two expansions with the same ExperimentKey and identical spec files MUST
// produce identical scenario lists, host identities included.
type ExperimentKey int64

// NewExperimentKey creates an ExperimentKey from an initial seed value.
func NewExperimentKey(seed int64) ExperimentKey {
	return ExperimentKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemTopology is the RNG subsystem consumed by topology
	// construction. One 64-bit draw per built host.
	SubsystemTopology = "topology"

	// SubsystemFailure is the RNG subsystem reserved for failure-event
	// sampling in downstream failure-model instances.
	SubsystemFailure = "failure"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, derived as initialSeed XOR fnv1a64(subsystemName). Adding a new
// subsystem never perturbs the draw sequence of an existing one.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        ExperimentKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from an ExperimentKey.
func NewPartitionedRNG(key ExperimentKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the ExperimentKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() ExperimentKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
