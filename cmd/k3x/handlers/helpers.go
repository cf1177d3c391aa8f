// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"io"
	"os"

	"github.com/k3xlab/k3x/internal/config"
	"github.com/k3xlab/k3x/internal/profiles"
	"github.com/k3xlab/k3x/internal/topology"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads the cluster config from a file.
	loadConfig = config.Load

	// findConfigFile discovers k3x.yaml when no --config flag is given.
	findConfigFile = config.FindConfigFile

	// getProfile fetches a preset from the catalog.
	getProfile = profiles.Get

	// writeFile writes data to a file (for testing injection).
	writeFile = os.WriteFile

	// mkdirAll creates output directories (for testing injection).
	mkdirAll = os.MkdirAll

	// stdout is the destination for handler output.
	stdout io.Writer = os.Stdout
)

// resolveTopology selects the topology a command operates on. A --profile
// flag takes precedence; otherwise the config file (explicit path or
// discovered k3x.yaml) decides.
func resolveTopology(configPath, profile string) (*topology.Topology, error) {
	if profile != "" {
		return getProfile(profile)
	}

	if configPath == "" {
		found, err := findConfigFile()
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return cfg.ResolveTopology()
}
