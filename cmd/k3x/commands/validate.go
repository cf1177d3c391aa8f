package commands

import (
	"github.com/spf13/cobra"

	"github.com/k3xlab/k3x/cmd/k3x/handlers"
)

// Validate returns the command for validating a cluster configuration.
//
// Flags:
//
//	--profile: Catalog profile name (overrides the config file topology)
//	--config: Path to k3x.yaml (default: discovered upwards from the cwd)
//	--equivalence: Also render every node with both backends and compare
//	  the implied device/binding graphs
//	--verbose: Log validation steps to stderr
func Validate() *cobra.Command {
	var opts handlers.ValidateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the topology and optionally check backend equivalence",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Catalog profile name")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to the cluster config file")
	cmd.Flags().BoolVar(&opts.Equivalence, "equivalence", false, "Check cross-backend equivalence for every node")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Verbose logging")

	return cmd
}
