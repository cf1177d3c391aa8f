package wizard

import (
	"context"
	"net"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// clusterNameRegex mirrors config.Validate's cluster name rule.
var clusterNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// runClusterIdentityGroup prompts for the cluster name.
func runClusterIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster Name").
				Description("1-32 lowercase alphanumeric characters or hyphens").
				Placeholder("my-cluster").
				Value(&result.ClusterName).
				Validate(validateClusterName),
		).Title("Cluster Identity"),
	).RunWithContext(ctx)
}

// runTopologyGroup prompts for the network topology profile.
func runTopologyGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Network Topology").
				Description("Preset from the profile catalog; edit k3x.yaml for a custom topology").
				Options(ProfileOptions()...).
				Value(&result.Profile),
		).Title("Topology"),
	).RunWithContext(ctx)
}

// runK3sGroup prompts for the k3s version (optional).
func runK3sGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("k3s Version (Optional)").
				Description("Leave empty to track the backend default").
				Placeholder("v1.30.2+k3s1").
				Value(&result.K3sVersion).
				Validate(validateVersion),
		).Title("k3s"),
	).RunWithContext(ctx)
}

// runNetworkGroup prompts for the advanced CIDR options.
func runNetworkGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Base Network CIDR (Optional)").
				Description("Pod and service subnets are derived from it when set").
				Placeholder("10.0.0.0/16").
				Value(&result.Advanced.BaseCIDR).
				Validate(validateOptionalCIDR),
			huh.NewInput().
				Title("Pod CIDR (Optional)").
				Placeholder("10.42.0.0/16").
				Value(&result.Advanced.PodCIDR).
				Validate(validateOptionalCIDR),
			huh.NewInput().
				Title("Service CIDR (Optional)").
				Placeholder("10.43.0.0/16").
				Value(&result.Advanced.ServiceCIDR).
				Validate(validateOptionalCIDR),
		).Title("Network"),
	).RunWithContext(ctx)
}

func validateClusterName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errClusterNameRequired
	}
	if !clusterNameRegex.MatchString(name) {
		return errClusterNameInvalid
	}
	return nil
}

func validateVersion(version string) error {
	if version == "" {
		return nil
	}
	if !strings.HasPrefix(version, "v") {
		return errVersionInvalid
	}
	return nil
}

func validateOptionalCIDR(cidr string) error {
	if cidr == "" {
		return nil
	}
	if _, _, err := net.ParseCIDR(cidr); err != nil {
		return errCIDRInvalid
	}
	return nil
}
