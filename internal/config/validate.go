package config

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

// clusterNameRegex validates cluster name format: 1-32 lowercase alphanumeric
// characters or hyphens, starting and ending with an alphanumeric.
var clusterNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// Validate checks the configuration for common errors and returns a detailed
// error if validation fails.
func (c *Config) Validate() error {
	if c.ClusterName == "" {
		return fmt.Errorf("cluster_name is required")
	}
	if !clusterNameRegex.MatchString(c.ClusterName) {
		return fmt.Errorf("invalid cluster_name %q: must be 1-32 lowercase alphanumeric characters or hyphens", c.ClusterName)
	}

	if c.Profile != "" && c.Topology != nil {
		return fmt.Errorf("profile and topology are mutually exclusive: set one of them")
	}

	if err := c.validateK3s(); err != nil {
		return fmt.Errorf("k3s validation failed: %w", err)
	}

	if err := c.validateNetwork(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}

	return nil
}

// validateK3s validates the cluster-membership service settings.
func (c *Config) validateK3s() error {
	if c.K3s.Version != "" && !strings.HasPrefix(c.K3s.Version, "v") {
		return fmt.Errorf("invalid k3s version %q: must start with 'v' (e.g. v1.30.2+k3s1)", c.K3s.Version)
	}
	return nil
}

// validateNetwork validates that all configured CIDRs parse.
func (c *Config) validateNetwork() error {
	cidrs := map[string]string{
		"network.ipv4_cidr":         c.Network.IPv4CIDR,
		"network.pod_ipv4_cidr":     c.Network.PodIPv4CIDR,
		"network.service_ipv4_cidr": c.Network.ServiceIPv4CIDR,
	}

	for field, cidr := range cidrs {
		if cidr == "" {
			continue
		}
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("invalid %s: %w", field, err)
		}
	}

	return nil
}
