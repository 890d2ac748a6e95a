package experiment

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opendc-sim/opendc-sim/sim"
	"github.com/opendc-sim/opendc-sim/sim/export"
	"github.com/opendc-sim/opendc-sim/sim/failure"
)

// writeTopology writes a one-cluster topology with the given host count.
func writeTopology(t *testing.T, dir, name string, hostCount int) string {
	t.Helper()
	content := `
clusters:
  - name: C1
    hosts:
      - name: node
        count: ` + strconv.Itoa(hostCount) + `
        cpus:
          - count: 1
            core_count: 4
            core_speed: 2400
        memory:
          size_mib: 65536
`
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func expanderSpec(t *testing.T) *Spec {
	t.Helper()
	dir := t.TempDir()
	return &Spec{
		Name:         "exp",
		OutputFolder: filepath.Join(dir, "out"),
		InitialSeed:  42,
		Runs:         1,
		Topologies: []TopologyRef{
			{Name: "small", File: writeTopology(t, dir, "small", 2)},
		},
		Workloads:          []WorkloadRef{{Name: "w", File: "w.csv"}},
		AllocationPolicies: []AllocationPolicy{{Policy: "best-fit"}},
		FailureModels:      []failure.Spec{{Interval: 0}},
		CarbonTraces:       []string{"c.csv"},
		ExportModels:       []export.Spec{{IntervalSeconds: 300}},
	}
}

func TestExpand_ProductSizeAndDenseNames(t *testing.T) {
	dir := t.TempDir()
	spec := expanderSpec(t)
	spec.Topologies = []TopologyRef{
		{Name: "small", File: writeTopology(t, dir, "small", 1)},
		{Name: "large", File: writeTopology(t, dir, "large", 3)},
	}
	spec.Workloads = []WorkloadRef{{Name: "w0"}, {Name: "w1"}}
	spec.FailureModels = []failure.Spec{{Interval: 0}, {Interval: 3600}}

	scenarios, err := NewExpander().Expand(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2 topologies x 2 workloads x 1 policy x 2 failure models x 1 trace x 1 export.
	assert.Len(t, scenarios, 8)
	for i, s := range scenarios {
		assert.Equal(t, strconv.Itoa(i), s.Name)
	}
}

func TestExpand_TraversalOrder_TopologyOutermost(t *testing.T) {
	// 2 topologies and 2 export models with all other axes singular yield 4
	// scenarios: "0","1" share the first topology, "2","3" the second.
	dir := t.TempDir()
	spec := expanderSpec(t)
	spec.Topologies = []TopologyRef{
		{Name: "small", File: writeTopology(t, dir, "small", 2)},
		{Name: "large", File: writeTopology(t, dir, "large", 5)},
	}
	spec.ExportModels = []export.Spec{{IntervalSeconds: 60}, {IntervalSeconds: 300}}

	scenarios, err := NewExpander().Expand(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 4 {
		t.Fatalf("scenarios = %d, want 4", len(scenarios))
	}
	wantTopology := []string{"small", "small", "large", "large"}
	wantHosts := []int{2, 2, 5, 5}
	wantInterval := []int64{60, 300, 60, 300}
	for i, s := range scenarios {
		assert.Equal(t, strconv.Itoa(i), s.Name)
		assert.Equal(t, wantTopology[i], s.Topology.Name, "scenario %d topology", i)
		assert.Len(t, s.Hosts, wantHosts[i], "scenario %d hosts", i)
		assert.Equal(t, wantInterval[i], s.ExportModel.IntervalSeconds, "scenario %d export interval", i)
	}
}

func TestExpand_HostIdentity_UniqueAcrossScenarios(t *testing.T) {
	dir := t.TempDir()
	spec := expanderSpec(t)
	spec.Workloads = []WorkloadRef{{Name: "w0"}, {Name: "w1"}, {Name: "w2"}}
	spec.Topologies = []TopologyRef{
		{Name: "small", File: writeTopology(t, dir, "small", 2)},
	}

	scenarios, err := NewExpander().Expand(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for _, s := range scenarios {
		for _, h := range s.Hosts {
			id := h.ID.String()
			if seen[id] {
				t.Fatalf("host ID %s reused across scenarios", id)
			}
			seen[id] = true
		}
	}
	// Sequential components keep increasing across the whole run.
	lastHosts := scenarios[len(scenarios)-1].Hosts
	assert.Equal(t, int64(4), lastHosts[0].ID.Seq)
}

func TestExpand_SameSeed_Reproducible(t *testing.T) {
	spec := expanderSpec(t)

	a, err := NewExpander().Expand(spec)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewExpander().Expand(spec)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, a, b)
}

func TestExpand_WritesProvenanceLog(t *testing.T) {
	dir := t.TempDir()
	spec := expanderSpec(t)
	spec.Topologies = []TopologyRef{
		{Name: "small", File: writeTopology(t, dir, "small", 1)},
		{Name: "large", File: writeTopology(t, dir, "large", 2)},
	}
	spec.CarbonTraces = []string{"c0.csv", "c1.csv"}

	scenarios, err := NewExpander().Expand(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := parseLog(t, filepath.Join(spec.OutputFolder, spec.Name, ProvenanceFileName))
	if len(records) != len(scenarios) {
		t.Fatalf("provenance records = %d, want %d", len(records), len(scenarios))
	}
	for i, r := range records {
		if len(r.Topologies) != 1 || len(r.CarbonTraces) != 1 {
			t.Fatalf("record %d is not a single-combination reduction: %+v", i, r)
		}
		assert.Equal(t, scenarios[i].Topology.Name, r.Topologies[0].Name, "record %d topology", i)
		assert.Equal(t, scenarios[i].CarbonTrace, r.CarbonTraces[0], "record %d carbon trace", i)
	}
}

func TestExpand_CreatesOutputDirectory(t *testing.T) {
	spec := expanderSpec(t)

	if _, err := NewExpander().Expand(spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(filepath.Join(spec.OutputFolder, spec.Name))
	if err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestExpand_UnresolvableTopology_AbortsWithResolutionError(t *testing.T) {
	spec := expanderSpec(t)
	spec.Topologies = append(spec.Topologies, TopologyRef{Name: "ghost", File: "does/not/exist.yaml"})

	scenarios, err := NewExpander().Expand(spec)
	if err == nil {
		t.Fatal("expected error for unresolvable topology, got nil")
	}
	var resErr *sim.ResolutionError
	if !errors.As(err, &resErr) {
		t.Errorf("error type = %T, want *sim.ResolutionError", err)
	}
	if scenarios != nil {
		t.Errorf("expected no partial scenario list, got %d scenarios", len(scenarios))
	}
}

func TestExpand_NegativeFailureInterval_Aborts(t *testing.T) {
	spec := expanderSpec(t)
	spec.FailureModels = []failure.Spec{{Interval: -1}}

	scenarios, err := NewExpander().Expand(spec)
	if err == nil {
		t.Fatal("expected error for negative failure interval, got nil")
	}
	var resErr *sim.ResolutionError
	if !errors.As(err, &resErr) {
		t.Errorf("error type = %T, want *sim.ResolutionError", err)
	}
	assert.Nil(t, scenarios)
}

func TestExpand_EmptyAxis_YieldsZeroScenarios(t *testing.T) {
	// Validate rejects empty axes at decode time; a hand-built spec with an
	// empty axis silently expands to nothing but still finalizes the log.
	spec := expanderSpec(t)
	spec.Workloads = nil

	scenarios, err := NewExpander().Expand(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Empty(t, scenarios)

	records := parseLog(t, filepath.Join(spec.OutputFolder, spec.Name, ProvenanceFileName))
	assert.Empty(t, records)
}
