package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/k3xlab/k3x/internal/config"
)

const fileHeader = `# k3x cluster configuration
# Generated by 'k3x init'. See 'k3x profiles list' for available topologies.
`

// ToConfig converts the wizard answers into a cluster configuration.
func (r *Result) ToConfig() *config.Config {
	cfg := &config.Config{
		ClusterName: r.ClusterName,
		Profile:     r.Profile,
		K3s:         config.K3sConfig{Version: r.K3sVersion},
	}

	if r.Advanced != nil {
		cfg.Network = config.NetworkConfig{
			IPv4CIDR:        r.Advanced.BaseCIDR,
			PodIPv4CIDR:     r.Advanced.PodCIDR,
			ServiceIPv4CIDR: r.Advanced.ServiceCIDR,
		}
	}

	return cfg
}

// Write marshals the configuration to path. It refuses to overwrite an
// existing file unless force is set.
func Write(cfg *config.Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
