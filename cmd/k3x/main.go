// Package main is the entry point for the k3x CLI.
//
// k3x compiles one abstract cluster network topology into the artifacts both
// provisioning backends consume: a structured configuration fragment for the
// declarative-OS backend, systemd-networkd unit files for the image-based
// backend, and per-node k3s flags shared by both.
//
// Commands: init, render, flags, profiles, validate.
//
// For detailed usage information, run:
//
//	k3x --help
package main

import (
	"fmt"
	"os"

	"github.com/k3xlab/k3x/cmd/k3x/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
