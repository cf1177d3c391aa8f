package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3xlab/k3x/internal/profiles"
	"github.com/k3xlab/k3x/internal/topology"
)

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantErr  string
		validate func(*testing.T, *Config)
	}{
		{
			name: "minimal config defaults to the flat profile",
			yaml: "cluster_name: dev\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "dev", cfg.ClusterName)
				assert.Equal(t, profiles.Flat, cfg.Profile)
				assert.Nil(t, cfg.Topology)
			},
		},
		{
			name: "explicit profile",
			yaml: "cluster_name: dev\nprofile: bonded-vlan\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, profiles.BondedVLAN, cfg.Profile)
			},
		},
		{
			name: "network cidrs are derived from the base",
			yaml: "cluster_name: dev\nnetwork:\n  ipv4_cidr: 10.0.0.0/16\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "10.0.128.0/17", cfg.Network.PodIPv4CIDR)
				assert.Equal(t, "10.0.96.0/19", cfg.Network.ServiceIPv4CIDR)
			},
		},
		{
			name: "explicit cidrs are not overridden",
			yaml: "cluster_name: dev\nnetwork:\n  ipv4_cidr: 10.0.0.0/16\n  pod_ipv4_cidr: 10.42.0.0/16\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "10.42.0.0/16", cfg.Network.PodIPv4CIDR)
				assert.Equal(t, "10.0.96.0/19", cfg.Network.ServiceIPv4CIDR)
			},
		},
		{
			name: "inline topology",
			yaml: `cluster_name: dev
topology:
  nodes:
    server-1:
      cluster: 192.168.1.1
  interfaces:
    cluster: eth1
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Profile)
				require.NotNil(t, cfg.Topology)
				assert.Equal(t, "192.168.1.1", cfg.Topology.Nodes["server-1"][topology.RoleCluster])
			},
		},
		{
			name:    "missing cluster name",
			yaml:    "profile: flat\n",
			wantErr: "cluster_name is required",
		},
		{
			name:    "invalid cluster name",
			yaml:    "cluster_name: Dev_Cluster\n",
			wantErr: "invalid cluster_name",
		},
		{
			name: "profile and topology are mutually exclusive",
			yaml: `cluster_name: dev
profile: flat
topology:
  nodes:
    server-1:
      cluster: 192.168.1.1
  interfaces:
    cluster: eth1
`,
			wantErr: "mutually exclusive",
		},
		{
			name:    "k3s version must be tagged",
			yaml:    "cluster_name: dev\nk3s:\n  version: 1.30.2\n",
			wantErr: "must start with 'v'",
		},
		{
			name:    "bad network cidr",
			yaml:    "cluster_name: dev\nnetwork:\n  ipv4_cidr: 10.0.0.0\n",
			wantErr: "failed to derive pod subnet",
		},
		{
			name:    "bad pod cidr",
			yaml:    "cluster_name: dev\nnetwork:\n  pod_ipv4_cidr: not-a-cidr\n",
			wantErr: "invalid network.pod_ipv4_cidr",
		},
		{
			name:    "not yaml",
			yaml:    "{{nope",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromBytes([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestResolveTopologyFromProfile(t *testing.T) {
	cfg := &Config{ClusterName: "dev", Profile: profiles.VLAN}

	topo, err := cfg.ResolveTopology()
	require.NoError(t, err)
	assert.Equal(t, topology.ModeVLAN, topo.Mode())
}

func TestResolveTopologyUnknownProfile(t *testing.T) {
	cfg := &Config{ClusterName: "dev", Profile: "mesh"}

	_, err := cfg.ResolveTopology()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "mesh"`)
}

func TestResolveTopologyInline(t *testing.T) {
	cfg := &Config{
		ClusterName: "dev",
		Topology: &topology.Topology{
			Nodes:      map[string]map[string]string{"server-1": {topology.RoleCluster: "192.168.1.1"}},
			Interfaces: map[string]string{topology.RoleCluster: "eth1"},
		},
	}

	topo, err := cfg.ResolveTopology()
	require.NoError(t, err)
	assert.Equal(t, topology.ModeFlat, topo.Mode())
}

func TestResolveTopologyInlineInvalid(t *testing.T) {
	cfg := &Config{
		ClusterName: "dev",
		Topology:    &topology.Topology{},
	}

	_, err := cfg.ResolveTopology()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inline topology")
}

func TestResolveTopologyOverridesCIDRs(t *testing.T) {
	cfg := &Config{
		ClusterName: "dev",
		Profile:     profiles.Flat,
		Network: NetworkConfig{
			PodIPv4CIDR:     "10.100.0.0/16",
			ServiceIPv4CIDR: "10.101.0.0/16",
		},
	}

	topo, err := cfg.ResolveTopology()
	require.NoError(t, err)
	assert.Equal(t, "10.100.0.0/16", topo.PodNetworkCIDR)
	assert.Equal(t, "10.101.0.0/16", topo.ServiceNetworkCIDR)
}
