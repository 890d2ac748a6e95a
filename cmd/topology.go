package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opendc-sim/opendc-sim/sim"
	"github.com/opendc-sim/opendc-sim/sim/power"
	"github.com/opendc-sim/opendc-sim/sim/topology"
)

var (
	topologyFile string // Path to the topology spec file
	topologySeed int64  // Seed for host identity generation
)

// topologyCmd flattens a topology file standalone, without an experiment.
var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Flatten a topology file into its host inventory",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if topologyFile == "" {
			logrus.Fatalf("Topology file not provided. Exiting.")
		}

		tspec, err := topology.LoadTopologySpec(topologyFile)
		if err != nil {
			logrus.Fatalf("Failed to load topology spec: %v", err)
		}

		rng := sim.NewPartitionedRNG(sim.NewExperimentKey(topologySeed)).ForSubsystem(sim.SubsystemTopology)
		hosts, err := topology.NewBuilder(topology.NewIdentityRegistry()).Build(tspec, rng, power.Default)
		if err != nil {
			logrus.Fatalf("Failed to build topology: %v", err)
		}

		for _, h := range hosts {
			fmt.Printf("%s cluster=%d cores=%d memory=%dMiB id=%s\n",
				h.Name, h.Cluster, len(h.Machine.Cores), h.Machine.Memory.SizeMiB, h.ID)
		}
		logrus.Infof("Built %d hosts from %s", len(hosts), topologyFile)
	},
}

// init sets up CLI flags for the topology subcommand
func init() {
	topologyCmd.Flags().StringVar(&topologyFile, "topology", "", "Path to the topology spec file")
	topologyCmd.Flags().Int64Var(&topologySeed, "seed", 42, "Seed for host identity generation")

	rootCmd.AddCommand(topologyCmd)
}
