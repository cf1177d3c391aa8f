// Package k3s derives per-node command-line flags for the cluster-membership
// service from the shared topology. Both provisioning backends append the
// derived flags to the k3s unit verbatim.
package k3s

import (
	"fmt"

	"github.com/k3xlab/k3x/internal/topology"
)

// Role is the k3s process role on a node.
type Role string

const (
	RoleServer Role = "server"
	RoleAgent  Role = "agent"
)

// PrimaryServerNode is the fixed node key whose cluster address every other
// node trusts as a TLS subject alternative name. It is a documented
// convention, not derived from the topology, so certificate verification
// during join cannot drift with node ordering.
const PrimaryServerNode = "server-1"

// DeriveFlags returns the ordered flag list for the k3s process on nodeName.
//
// Every node gets its cluster address and overlay interface. Servers
// additionally advertise their own address and pin the primary server's
// address as a TLS SAN so secondary servers and agents can verify the
// primary's certificate during join. Agents never receive those two flags.
func DeriveFlags(topo *topology.Topology, nodeName string, role Role) ([]string, error) {
	if role != RoleServer && role != RoleAgent {
		return nil, fmt.Errorf("invalid k3s role %q (must be %q or %q)", role, RoleServer, RoleAgent)
	}

	if !topo.HasNode(nodeName) {
		return nil, &topology.UnknownNodeError{Node: nodeName}
	}

	// Every node's join and certificate handling hinges on the primary
	// server, so its absence is an error regardless of role.
	if !topo.HasNode(PrimaryServerNode) {
		return nil, &topology.UnknownNodeError{Node: PrimaryServerNode}
	}

	addr, err := topo.Address(nodeName, topology.RoleCluster)
	if err != nil {
		return nil, err
	}
	iface, err := topo.InterfaceFor(nodeName, topology.RoleCluster)
	if err != nil {
		return nil, err
	}

	flags := []string{
		fmt.Sprintf("--node-ip=%s", addr),
		fmt.Sprintf("--flannel-iface=%s", iface),
	}

	if role == RoleServer {
		primaryAddr, err := topo.Address(PrimaryServerNode, topology.RoleCluster)
		if err != nil {
			return nil, err
		}
		flags = append(flags,
			fmt.Sprintf("--advertise-address=%s", addr),
			fmt.Sprintf("--tls-san=%s", primaryAddr),
		)
		if topo.PodNetworkCIDR != "" {
			flags = append(flags, fmt.Sprintf("--cluster-cidr=%s", topo.PodNetworkCIDR))
		}
		if topo.ServiceNetworkCIDR != "" {
			flags = append(flags, fmt.Sprintf("--service-cidr=%s", topo.ServiceNetworkCIDR))
		}
	}

	// Joining nodes point at the cluster endpoint; the primary server
	// bootstraps the cluster and never joins itself.
	if topo.ServiceEndpoint != "" && (role == RoleAgent || nodeName != PrimaryServerNode) {
		flags = append(flags, fmt.Sprintf("--server=%s", topo.ServiceEndpoint))
	}

	return flags, nil
}
