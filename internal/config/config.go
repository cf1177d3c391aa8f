package config

import (
	"fmt"

	"github.com/k3xlab/k3x/internal/profiles"
	"github.com/k3xlab/k3x/internal/topology"
)

// DefaultConfigFilename is the configuration filename k3x looks for when no
// --config flag is given.
const DefaultConfigFilename = "k3x.yaml"

// DefaultProfile is used when the configuration names neither a profile nor
// an inline topology.
const DefaultProfile = profiles.Flat

// Config is the top-level cluster configuration.
type Config struct {
	ClusterName string `yaml:"cluster_name"`

	// Profile names a catalog preset. Mutually exclusive with Topology.
	Profile string `yaml:"profile,omitempty"`

	// Topology embeds a custom topology instead of a catalog preset. It is
	// validated by the same rules as the presets.
	Topology *topology.Topology `yaml:"topology,omitempty"`

	K3s     K3sConfig     `yaml:"k3s,omitempty"`
	Network NetworkConfig `yaml:"network,omitempty"`
}

// K3sConfig holds settings for the cluster-membership service.
type K3sConfig struct {
	Version string `yaml:"version,omitempty"`
}

// NetworkConfig holds the cluster-level CIDRs. Pod and service CIDRs are
// derived from the base CIDR when not set explicitly.
type NetworkConfig struct {
	IPv4CIDR        string `yaml:"ipv4_cidr,omitempty"`
	PodIPv4CIDR     string `yaml:"pod_ipv4_cidr,omitempty"`
	ServiceIPv4CIDR string `yaml:"service_ipv4_cidr,omitempty"`
}

// ApplyDefaults fills derived and defaulted fields. Called by Load before
// validation.
func (c *Config) ApplyDefaults() error {
	if c.Profile == "" && c.Topology == nil {
		c.Profile = DefaultProfile
	}

	return c.deriveNetworks()
}

// deriveNetworks calculates pod and service subnets from the base CIDR when
// they are not set. Layout inside the base network:
// cidrsubnet(base, 1, 1) for pods, cidrsubnet(base, 3, 3) for services.
func (c *Config) deriveNetworks() error {
	if c.Network.IPv4CIDR == "" {
		return nil
	}

	if c.Network.PodIPv4CIDR == "" {
		subnet, err := CIDRSubnet(c.Network.IPv4CIDR, 1, 1)
		if err != nil {
			return fmt.Errorf("failed to derive pod subnet: %w", err)
		}
		c.Network.PodIPv4CIDR = subnet
	}

	if c.Network.ServiceIPv4CIDR == "" {
		subnet, err := CIDRSubnet(c.Network.IPv4CIDR, 3, 3)
		if err != nil {
			return fmt.Errorf("failed to derive service subnet: %w", err)
		}
		c.Network.ServiceIPv4CIDR = subnet
	}

	return nil
}

// ResolveTopology returns the validated topology the configuration selects:
// the inline topology when one is embedded, the named catalog preset
// otherwise. Configured network CIDRs override the topology's own values so
// one preset serves clusters with different address plans.
func (c *Config) ResolveTopology() (*topology.Topology, error) {
	var topo *topology.Topology

	if c.Topology != nil {
		if err := c.Topology.Validate(); err != nil {
			return nil, fmt.Errorf("inline topology: %w", err)
		}
		topo = c.Topology
	} else {
		var err error
		topo, err = profiles.Get(c.Profile)
		if err != nil {
			return nil, err
		}
	}

	if c.Network.PodIPv4CIDR != "" {
		topo.PodNetworkCIDR = c.Network.PodIPv4CIDR
	}
	if c.Network.ServiceIPv4CIDR != "" {
		topo.ServiceNetworkCIDR = c.Network.ServiceIPv4CIDR
	}

	return topo, nil
}
