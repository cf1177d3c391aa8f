package commands

import (
	"github.com/spf13/cobra"

	"github.com/k3xlab/k3x/cmd/k3x/handlers"
)

// Render returns the command for rendering backend artifacts for one node.
//
// Flags:
//
//	--profile: Catalog profile name (overrides the config file topology)
//	--config: Path to k3x.yaml (default: discovered upwards from the cwd)
//	--node: Node name to render (required)
//	--backend: Target backend - nixos or networkd (default: "nixos")
//	--out: Directory to write unit files / fragment into instead of stdout
//	--verbose: Log render decisions to stderr
func Render() *cobra.Command {
	var opts handlers.RenderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a node's network configuration for one backend",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Render(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Catalog profile name")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to the cluster config file")
	cmd.Flags().StringVar(&opts.Node, "node", "", "Node name to render")
	cmd.Flags().StringVar(&opts.Backend, "backend", handlers.BackendNixOS, "Backend to render for (nixos or networkd)")
	cmd.Flags().StringVar(&opts.OutDir, "out", "", "Write artifacts into this directory instead of stdout")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Verbose logging")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}
