package commands

import (
	"github.com/spf13/cobra"

	"github.com/k3xlab/k3x/cmd/k3x/handlers"
)

// Profiles returns the parent command for inspecting the topology catalog.
func Profiles() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect the topology profile catalog",
	}

	cmd.AddCommand(ProfilesList())
	cmd.AddCommand(ProfilesShow())

	return cmd
}

// ProfilesList returns the command listing all catalog presets.
func ProfilesList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available topology profiles",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.ProfilesList()
		},
	}
}

// ProfilesShow returns the command printing one preset's topology.
func ProfilesShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a topology profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ProfilesShow(args[0])
		},
	}
}
