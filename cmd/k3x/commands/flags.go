package commands

import (
	"github.com/spf13/cobra"

	"github.com/k3xlab/k3x/cmd/k3x/handlers"
)

// Flags returns the command for deriving a node's k3s flags.
//
// Flags:
//
//	--profile: Catalog profile name (overrides the config file topology)
//	--config: Path to k3x.yaml (default: discovered upwards from the cwd)
//	--node: Node name (required)
//	--role: k3s role - server or agent (default: "server")
func Flags() *cobra.Command {
	var opts handlers.FlagsOptions

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "Derive the k3s command-line flags for a node",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Flags(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Catalog profile name")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to the cluster config file")
	cmd.Flags().StringVar(&opts.Node, "node", "", "Node name")
	cmd.Flags().StringVar(&opts.Role, "role", "server", "k3s role (server or agent)")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}
