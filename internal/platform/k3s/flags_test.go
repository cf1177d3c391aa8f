package k3s

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3xlab/k3x/internal/topology"
)

func clusterTopology() *topology.Topology {
	return &topology.Topology{
		Nodes: map[string]map[string]string{
			"server-1": {topology.RoleCluster: "192.168.1.1"},
			"server-2": {topology.RoleCluster: "192.168.1.2"},
			"agent-1":  {topology.RoleCluster: "192.168.1.3"},
		},
		Interfaces:         map[string]string{topology.RoleCluster: "eth1"},
		ServiceEndpoint:    "https://192.168.1.1:6443",
		PodNetworkCIDR:     "10.42.0.0/16",
		ServiceNetworkCIDR: "10.43.0.0/16",
	}
}

func TestDeriveFlags(t *testing.T) {
	tests := []struct {
		name    string
		node    string
		role    Role
		mutate  func(*topology.Topology)
		want    []string
		wantErr string
	}{
		{
			name: "primary server bootstraps and never joins",
			node: "server-1",
			role: RoleServer,
			want: []string{
				"--node-ip=192.168.1.1",
				"--flannel-iface=eth1",
				"--advertise-address=192.168.1.1",
				"--tls-san=192.168.1.1",
				"--cluster-cidr=10.42.0.0/16",
				"--service-cidr=10.43.0.0/16",
			},
		},
		{
			name: "secondary server joins via the endpoint",
			node: "server-2",
			role: RoleServer,
			want: []string{
				"--node-ip=192.168.1.2",
				"--flannel-iface=eth1",
				"--advertise-address=192.168.1.2",
				"--tls-san=192.168.1.1",
				"--cluster-cidr=10.42.0.0/16",
				"--service-cidr=10.43.0.0/16",
				"--server=https://192.168.1.1:6443",
			},
		},
		{
			name: "agent gets no server-only flags",
			node: "agent-1",
			role: RoleAgent,
			want: []string{
				"--node-ip=192.168.1.3",
				"--flannel-iface=eth1",
				"--server=https://192.168.1.1:6443",
			},
		},
		{
			name: "network cidrs are optional",
			node: "server-1",
			role: RoleServer,
			mutate: func(topo *topology.Topology) {
				topo.PodNetworkCIDR = ""
				topo.ServiceNetworkCIDR = ""
			},
			want: []string{
				"--node-ip=192.168.1.1",
				"--flannel-iface=eth1",
				"--advertise-address=192.168.1.1",
				"--tls-san=192.168.1.1",
			},
		},
		{
			name: "no endpoint means no join flag",
			node: "agent-1",
			role: RoleAgent,
			mutate: func(topo *topology.Topology) {
				topo.ServiceEndpoint = ""
			},
			want: []string{
				"--node-ip=192.168.1.3",
				"--flannel-iface=eth1",
			},
		},
		{
			name:    "unknown node",
			node:    "server-9",
			role:    RoleServer,
			wantErr: `unknown node "server-9"`,
		},
		{
			name:    "invalid role",
			node:    "server-1",
			role:    Role("etcd"),
			wantErr: `invalid k3s role "etcd"`,
		},
		{
			name: "missing primary server fails server derivation",
			node: "server-2",
			role: RoleServer,
			mutate: func(topo *topology.Topology) {
				delete(topo.Nodes, PrimaryServerNode)
			},
			wantErr: `unknown node "server-1"`,
		},
		{
			name: "missing primary server fails agent derivation too",
			node: "agent-1",
			role: RoleAgent,
			mutate: func(topo *topology.Topology) {
				delete(topo.Nodes, PrimaryServerNode)
			},
			wantErr: `unknown node "server-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo := clusterTopology()
			if tt.mutate != nil {
				tt.mutate(topo)
			}

			flags, err := DeriveFlags(topo, tt.node, tt.role)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flags)
		})
	}
}

func TestDeriveFlagsVLANInterface(t *testing.T) {
	topo := clusterTopology()
	topo.Interfaces = map[string]string{
		topology.InterfaceTrunk: "eth1",
		topology.RoleCluster:    "eth1.200",
	}
	topo.VLANTags = map[string]int{topology.RoleCluster: 200}

	flags, err := DeriveFlags(topo, "agent-1", RoleAgent)
	require.NoError(t, err)
	assert.Contains(t, flags, "--flannel-iface=eth1.200")
}

func TestDeriveFlagsPerNodeTags(t *testing.T) {
	topo := &topology.Topology{
		Nodes: map[string]map[string]string{
			"server-1": {topology.RoleCluster: "192.168.200.1"},
			"server-2": {topology.RoleCluster: "192.168.201.2"},
		},
		Interfaces: map[string]string{topology.InterfaceTrunk: "eth1"},
		NodeVLANTags: map[string]map[string]int{
			"server-1": {topology.RoleCluster: 200},
			"server-2": {topology.RoleCluster: 201},
		},
	}

	flags, err := DeriveFlags(topo, "server-2", RoleServer)
	require.NoError(t, err)
	assert.Contains(t, flags, "--flannel-iface=eth1.201")
	assert.Contains(t, flags, "--node-ip=192.168.201.2")
}
