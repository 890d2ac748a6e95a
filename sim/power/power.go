// Package power defines the power-model binding attached to every built
// host. The curve itself is evaluated by the simulation engine; this package
// only carries the declarative binding.
package power

// Model is a host power-model binding.
type Model struct {
	Kind      string  // curve family, currently always "linear"
	IdleWatts float64 // draw at zero utilization
	MaxWatts  float64 // draw at full utilization
}

// Linear returns a linear-interpolation power model between idle and max draw.
func Linear(maxWatts, idleWatts float64) Model {
	return Model{Kind: "linear", IdleWatts: idleWatts, MaxWatts: maxWatts}
}

// Default is the binding applied when a topology does not declare one.
var Default = Linear(350.0, 200.0)
