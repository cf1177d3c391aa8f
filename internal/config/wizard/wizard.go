package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Cluster identity
	ClusterName string

	// Topology profile from the catalog
	Profile string

	// k3s version (optional)
	K3sVersion string

	// Advanced options (only set in advanced mode)
	Advanced *AdvancedOptions
}

// AdvancedOptions holds the advanced network configuration options.
type AdvancedOptions struct {
	BaseCIDR    string
	PodCIDR     string
	ServiceCIDR string
}

// Run runs the interactive configuration wizard. If advanced is true,
// network CIDR options are shown as well. The context is used for
// cancellation support (e.g. Ctrl+C).
func Run(ctx context.Context, advanced bool) (*Result, error) {
	result := &Result{}

	if err := runClusterIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("cluster identity: %w", err)
	}

	if err := runTopologyGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}

	if err := runK3sGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("k3s: %w", err)
	}

	if advanced {
		result.Advanced = &AdvancedOptions{}
		if err := runNetworkGroup(ctx, result); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
	}

	return result, nil
}
