package commands

import (
	"github.com/spf13/cobra"

	"github.com/k3xlab/k3x/cmd/k3x/handlers"
)

// Init returns the command for interactively creating a k3x.yaml.
//
// Flags:
//
//	--advanced: Ask for network CIDR options as well
//	--force: Overwrite an existing config file
//	--output: Config file path (default: "k3x.yaml")
func Init() *cobra.Command {
	var (
		advanced bool
		force    bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a cluster configuration interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), advanced, force, output)
		},
	}

	cmd.Flags().BoolVar(&advanced, "advanced", false, "Show advanced configuration options")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&output, "output", "k3x.yaml", "Path of the config file to write")

	return cmd
}
