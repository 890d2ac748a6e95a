package failure

import (
	"errors"
	"testing"
	"time"

	"github.com/opendc-sim/opendc-sim/sim"
)

func TestFromSpec_PositiveInterval_BuildsModel(t *testing.T) {
	m, err := FromSpec(Spec{Interval: 86400})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a model, got nil")
	}
	if m.MTBF != 24*time.Hour {
		t.Errorf("MTBF = %v, want 24h", m.MTBF)
	}
}

func TestFromSpec_ZeroInterval_DisablesInjection(t *testing.T) {
	m, err := FromSpec(Spec{Interval: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil model for zero interval, got %+v", m)
	}
}

func TestFromSpec_NegativeInterval_ReturnsResolutionError(t *testing.T) {
	_, err := FromSpec(Spec{Interval: -3600})
	if err == nil {
		t.Fatal("expected error for negative interval, got nil")
	}
	var resErr *sim.ResolutionError
	if !errors.As(err, &resErr) {
		t.Errorf("error type = %T, want *sim.ResolutionError", err)
	}
}
