package handlers

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/k3xlab/k3x/internal/platform/networkd"
	"github.com/k3xlab/k3x/internal/platform/nixos"
	"github.com/k3xlab/k3x/internal/topology"
)

// Backend names accepted by the render command.
const (
	BackendNixOS    = "nixos"
	BackendNetworkd = "networkd"
)

// fragmentFilename is the name the declarative fragment is written under
// when --out is given.
const fragmentFilename = "network-fragment.yaml"

// RenderOptions holds the render command's inputs.
type RenderOptions struct {
	ConfigPath string
	Profile    string
	Node       string
	Backend    string
	OutDir     string
	Verbose    bool
}

// Render compiles the selected node's network configuration for one backend
// and writes it to stdout or into --out.
func Render(opts RenderOptions) error {
	log := newLogger(opts.Verbose)

	topo, err := resolveTopology(opts.ConfigPath, opts.Profile)
	if err != nil {
		return err
	}
	log.Info("resolved topology", "mode", topo.Mode(), "nodes", len(topo.Nodes))

	switch opts.Backend {
	case BackendNixOS:
		return renderNixOS(opts, topo)
	case BackendNetworkd:
		return renderNetworkd(opts, topo)
	default:
		return fmt.Errorf("unknown backend %q (must be %q or %q)", opts.Backend, BackendNixOS, BackendNetworkd)
	}
}

func renderNixOS(opts RenderOptions, topo *topology.Topology) error {
	frag, err := nixos.Render(topo, opts.Node)
	if err != nil {
		return err
	}

	data, err := frag.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal fragment: %w", err)
	}

	if opts.OutDir == "" {
		fmt.Fprint(stdout, string(data))
		return nil
	}

	if err := mkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(opts.OutDir, fragmentFilename)
	if err := writeFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write fragment: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

func renderNetworkd(opts RenderOptions, topo *topology.Topology) error {
	files, err := networkd.Render(topo, opts.Node)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	if opts.OutDir == "" {
		for i, name := range names {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "# %s\n%s", name, files[name])
		}
		return nil
	}

	if err := mkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, name := range names {
		path := filepath.Join(opts.OutDir, name)
		if err := writeFile(path, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	fmt.Fprintf(stdout, "Wrote %d unit files to %s\n", len(names), opts.OutDir)
	return nil
}
