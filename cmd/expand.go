package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opendc-sim/opendc-sim/sim/experiment"
)

var experimentFile string // Path to the experiment spec file

// expandCmd turns one experiment file into its full scenario list.
var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand an experiment file into runnable scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if experimentFile == "" {
			logrus.Fatalf("Experiment file not provided. Exiting.")
		}

		spec, err := experiment.LoadExperimentSpec(experimentFile)
		if err != nil {
			logrus.Fatalf("Failed to load experiment spec: %v", err)
		}

		startTime := time.Now()
		scenarios, err := experiment.NewExpander().Expand(spec)
		if err != nil {
			logrus.Fatalf("Expansion failed: %v", err)
		}

		for _, s := range scenarios {
			fmt.Printf("scenario %s: topology=%s hosts=%d workload=%s policy=%s carbon=%s\n",
				s.Name, s.Topology.Name, len(s.Hosts), s.Workload.Name, s.AllocationPolicy.Policy, s.CarbonTrace)
		}
		logrus.Infof("Expanded %d scenarios in %v", len(scenarios), time.Since(startTime))
	},
}

// init sets up CLI flags for the expand subcommand
func init() {
	expandCmd.Flags().StringVar(&experimentFile, "experiment", "", "Path to the experiment spec file")

	rootCmd.AddCommand(expandCmd)
}
