package topology

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opendc-sim/opendc-sim/sim"
)

// TopologySpec is the top-level hardware description: an ordered sequence of
// clusters. Loaded from YAML via LoadTopologySpec(path).
type TopologySpec struct {
	Clusters []ClusterSpec `yaml:"clusters" json:"clusters"`
}

// ClusterSpec is one cluster: an ordered sequence of host-group descriptors.
type ClusterSpec struct {
	Name  string          `yaml:"name,omitempty" json:"name,omitempty"`
	Hosts []HostGroupSpec `yaml:"hosts" json:"hosts"`
}

// HostGroupSpec describes Count identical hosts. Repeated instances share the
// descriptor and differ only by position and identity.
type HostGroupSpec struct {
	Name   string         `yaml:"name,omitempty" json:"name,omitempty"`
	Count  int            `yaml:"count" json:"count"`
	CPUs   []CPUGroupSpec `yaml:"cpus" json:"cpus"`
	Memory MemorySpec     `yaml:"memory" json:"memory"`
}

// CPUGroupSpec describes Count identical CPU packages of CoreCount cores each.
type CPUGroupSpec struct {
	Count        int     `yaml:"count" json:"count"`
	CoreCount    int     `yaml:"core_count" json:"core_count"`
	CoreSpeedMHz float64 `yaml:"core_speed" json:"core_speed"`
}

// MemorySpec describes the single memory unit of a host. Memory descriptors
// are never repeated.
type MemorySpec struct {
	SizeMiB int64 `yaml:"size_mib" json:"size_mib"`
}

// LoadTopologySpec reads and parses a YAML topology specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadTopologySpec(path string) (*TopologySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &sim.DecodeError{Path: path, Err: err}
	}
	var spec TopologySpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, &sim.DecodeError{Path: path, Err: err}
	}
	return &spec, nil
}
