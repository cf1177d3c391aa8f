package handlers

import (
	"fmt"

	"github.com/k3xlab/k3x/internal/platform/k3s"
)

// FlagsOptions holds the flags command's inputs.
type FlagsOptions struct {
	ConfigPath string
	Profile    string
	Node       string
	Role       string
}

// Flags derives the k3s command line for one node and prints it one flag per
// line, ready to splice into a unit file or shell invocation.
func Flags(opts FlagsOptions) error {
	topo, err := resolveTopology(opts.ConfigPath, opts.Profile)
	if err != nil {
		return err
	}

	flags, err := k3s.DeriveFlags(topo, opts.Node, k3s.Role(opts.Role))
	if err != nil {
		return err
	}

	for _, flag := range flags {
		fmt.Fprintln(stdout, flag)
	}
	return nil
}
