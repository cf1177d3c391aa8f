package profiles

import "github.com/k3xlab/k3x/internal/topology"

// k3s network defaults shared by the presets.
const (
	podNetworkCIDR     = "10.42.0.0/16"
	serviceNetworkCIDR = "10.43.0.0/16"
)

// flatProfile binds untagged addresses directly to eth1.
func flatProfile() *topology.Topology {
	return &topology.Topology{
		Nodes: map[string]map[string]string{
			"server-1": {topology.RoleCluster: "192.168.1.1"},
			"server-2": {topology.RoleCluster: "192.168.1.2"},
			"agent-1":  {topology.RoleCluster: "192.168.1.3"},
		},
		Interfaces: map[string]string{
			topology.RoleCluster: "eth1",
		},
		ServiceEndpoint:    "https://192.168.1.1:6443",
		PodNetworkCIDR:     podNetworkCIDR,
		ServiceNetworkCIDR: serviceNetworkCIDR,
	}
}

// vlanProfile tags cluster traffic with 200 and storage traffic with 100 on
// the eth1 trunk.
func vlanProfile() *topology.Topology {
	return &topology.Topology{
		Nodes: map[string]map[string]string{
			"server-1": {topology.RoleCluster: "192.168.200.1", topology.RoleStorage: "192.168.100.1"},
			"server-2": {topology.RoleCluster: "192.168.200.2", topology.RoleStorage: "192.168.100.2"},
			"agent-1":  {topology.RoleCluster: "192.168.200.3", topology.RoleStorage: "192.168.100.3"},
		},
		Interfaces: map[string]string{
			topology.InterfaceTrunk: "eth1",
			topology.RoleCluster:    "eth1.200",
			topology.RoleStorage:    "eth1.100",
		},
		VLANTags: map[string]int{
			topology.RoleCluster: 200,
			topology.RoleStorage: 100,
		},
		ServiceEndpoint:    "https://192.168.200.1:6443",
		PodNetworkCIDR:     podNetworkCIDR,
		ServiceNetworkCIDR: serviceNetworkCIDR,
	}
}

// bondedVLANProfile carries the vlan profile's trunk on an active-backup
// bond of eth1 and eth2, with eth1 as the primary member.
func bondedVLANProfile() *topology.Topology {
	return &topology.Topology{
		Nodes: map[string]map[string]string{
			"server-1": {topology.RoleCluster: "192.168.200.1", topology.RoleStorage: "192.168.100.1"},
			"server-2": {topology.RoleCluster: "192.168.200.2", topology.RoleStorage: "192.168.100.2"},
			"agent-1":  {topology.RoleCluster: "192.168.200.3", topology.RoleStorage: "192.168.100.3"},
		},
		Interfaces: map[string]string{
			topology.InterfaceTrunk: "bond0",
			topology.RoleCluster:    "bond0.200",
			topology.RoleStorage:    "bond0.100",
		},
		VLANTags: map[string]int{
			topology.RoleCluster: 200,
			topology.RoleStorage: 100,
		},
		BondMembers: []string{"eth1", "eth2"},
		Bond: &topology.BondSpec{
			Mode:              topology.BondModeActiveBackup,
			MonitorIntervalMs: 100,
			PrimaryMember:     "eth1",
		},
		ServiceEndpoint:    "https://192.168.200.1:6443",
		PodNetworkCIDR:     podNetworkCIDR,
		ServiceNetworkCIDR: serviceNetworkCIDR,
	}
}

// dhcpProfile is the flat shape with addresses handed out by the lease
// service; the literal addresses are the reservations the caller registers
// with it.
func dhcpProfile() *topology.Topology {
	topo := flatProfile()
	topo.AddressSource = topology.AddressDHCP
	return topo
}

// splitVLANProfile deliberately violates the one-tag-per-role invariant:
// server-1 tags cluster traffic 200 while server-2 tags it 201, so the two
// nodes render valid but mutually unreachable configurations. The per-node
// tag lookup stays scoped to this profile.
func splitVLANProfile() *topology.Topology {
	return &topology.Topology{
		Nodes: map[string]map[string]string{
			"server-1": {topology.RoleCluster: "192.168.200.1"},
			"server-2": {topology.RoleCluster: "192.168.201.2"},
		},
		Interfaces: map[string]string{
			topology.InterfaceTrunk: "eth1",
		},
		NodeVLANTags: map[string]map[string]int{
			"server-1": {topology.RoleCluster: 200},
			"server-2": {topology.RoleCluster: 201},
		},
		ServiceEndpoint:    "https://192.168.200.1:6443",
		PodNetworkCIDR:     podNetworkCIDR,
		ServiceNetworkCIDR: serviceNetworkCIDR,
	}
}
