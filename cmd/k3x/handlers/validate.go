package handlers

import (
	"fmt"

	"github.com/k3xlab/k3x/internal/platform/equiv"
	"github.com/k3xlab/k3x/internal/platform/networkd"
	"github.com/k3xlab/k3x/internal/platform/nixos"
)

// ValidateOptions holds the validate command's inputs.
type ValidateOptions struct {
	ConfigPath  string
	Profile     string
	Equivalence bool
	Verbose     bool
}

// Validate resolves and validates the selected topology. With --equivalence
// it additionally renders every node through both backends and compares the
// implied device/binding graphs; any divergence is a compiler defect and
// fails validation.
func Validate(opts ValidateOptions) error {
	log := newLogger(opts.Verbose)

	topo, err := resolveTopology(opts.ConfigPath, opts.Profile)
	if err != nil {
		return err
	}
	log.Info("topology valid", "mode", topo.Mode(), "nodes", len(topo.Nodes))

	if !opts.Equivalence {
		fmt.Fprintf(stdout, "Topology valid (mode: %s, %d nodes)\n", topo.Mode(), len(topo.Nodes))
		return nil
	}

	for _, node := range topo.NodeNames() {
		frag, err := nixos.Render(topo, node)
		if err != nil {
			return fmt.Errorf("nixos render for %s: %w", node, err)
		}
		files, err := networkd.Render(topo, node)
		if err != nil {
			return fmt.Errorf("networkd render for %s: %w", node, err)
		}

		fileGraph, err := equiv.FromUnitFiles(files)
		if err != nil {
			return fmt.Errorf("unit file graph for %s: %w", node, err)
		}

		diffs := equiv.FromFragment(frag).Diff(fileGraph)
		if len(diffs) > 0 {
			for _, d := range diffs {
				fmt.Fprintf(stdout, "%s: %s\n", node, d)
			}
			return fmt.Errorf("backends diverge for node %s", node)
		}
		log.Info("backends equivalent", "node", node)
	}

	fmt.Fprintf(stdout, "Topology valid, backends equivalent for all %d nodes\n", len(topo.Nodes))
	return nil
}
