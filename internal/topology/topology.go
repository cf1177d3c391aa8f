package topology

import (
	"sort"

	"github.com/k3xlab/k3x/internal/util/naming"
)

// Well-known role and interface keys.
const (
	// RoleCluster carries k3s node-to-node and overlay traffic. Every
	// topology must map it; it decides which binding is required for online.
	RoleCluster = "cluster"
	// RoleStorage carries storage replication traffic in the VLAN profiles.
	RoleStorage = "storage"
	// InterfaceTrunk is the reserved Interfaces key naming the underlying
	// physical or bonded device that carries VLAN-tagged traffic.
	InterfaceTrunk = "trunk"
)

// AddressPrefixLen is the prefix length rendered for every statically bound
// address. The cluster network allocates one /24 per role subnet.
const AddressPrefixLen = 24

// AddressSource selects how node addresses reach the interfaces.
type AddressSource string

const (
	// AddressStatic binds the literal addresses from Nodes.
	AddressStatic AddressSource = "static"
	// AddressDHCP marks addresses as externally assigned; the literal
	// addresses in Nodes are the reservations a lease service hands out.
	AddressDHCP AddressSource = "dhcp"
)

// BondModeActiveBackup is the only bond mode that designates a primary
// member and therefore a reselect policy.
const BondModeActiveBackup = "active-backup"

// BondSpec describes link aggregation of the trunk device.
type BondSpec struct {
	Mode              string `yaml:"mode" json:"mode"`
	MonitorIntervalMs int    `yaml:"monitor_interval_ms" json:"monitorIntervalMs"`
	PrimaryMember     string `yaml:"primary_member,omitempty" json:"primaryMember,omitempty"`
}

// Topology is the abstract description of cluster network topology. It is
// immutable once constructed and owns no external resources; renderer calls
// only read it and may run concurrently.
type Topology struct {
	// Nodes maps node name -> role -> IPv4 address (no prefix length).
	Nodes map[string]map[string]string `yaml:"nodes" json:"nodes"`

	// Interfaces maps role -> interface name. VLAN-tagged names already
	// carry the tag suffix (e.g. "eth1.200"). The InterfaceTrunk key names
	// the underlying device.
	Interfaces map[string]string `yaml:"interfaces" json:"interfaces"`

	// VLANTags maps role -> 802.1Q tag. Absent means a flat topology.
	VLANTags map[string]int `yaml:"vlan_tags,omitempty" json:"vlanTags,omitempty"`

	// NodeVLANTags relaxes the one-tag-per-role invariant for the negative
	// testing profile only: node -> role -> tag. It is not a general
	// per-node override mechanism.
	NodeVLANTags map[string]map[string]int `yaml:"node_vlan_tags,omitempty" json:"nodeVLANTags,omitempty"`

	// BondMembers lists the physical members of the bonded trunk, in the
	// order they are bound into the bond.
	BondMembers []string `yaml:"bond_members,omitempty" json:"bondMembers,omitempty"`

	// Bond is present iff the trunk is a bonded device.
	Bond *BondSpec `yaml:"bond,omitempty" json:"bond,omitempty"`

	// AddressSource defaults to AddressStatic when empty.
	AddressSource AddressSource `yaml:"address_source,omitempty" json:"addressSource,omitempty"`

	// Cluster-level metadata carried through unchanged to the flag deriver.
	ServiceEndpoint    string `yaml:"service_endpoint,omitempty" json:"serviceEndpoint,omitempty"`
	PodNetworkCIDR     string `yaml:"pod_network_cidr,omitempty" json:"podNetworkCIDR,omitempty"`
	ServiceNetworkCIDR string `yaml:"service_network_cidr,omitempty" json:"serviceNetworkCIDR,omitempty"`
}

// Mode selects the renderer code path. It is always derived from field
// presence, never stored, so it cannot drift from the actual fields.
type Mode string

const (
	ModeFlat         Mode = "flat"
	ModeVLAN         Mode = "vlan"
	ModeBondedVLAN   Mode = "bonded-vlan"
	ModeDHCPAssigned Mode = "dhcp-assigned"
	ModeInconsistent Mode = "inconsistent"
)

// Mode derives the topology mode from the presence of VLANTags, NodeVLANTags
// and Bond.
func (t *Topology) Mode() Mode {
	switch {
	case len(t.NodeVLANTags) > 0:
		return ModeInconsistent
	case t.Bond != nil:
		return ModeBondedVLAN
	case len(t.VLANTags) > 0:
		return ModeVLAN
	case t.AddressSource == AddressDHCP:
		return ModeDHCPAssigned
	default:
		return ModeFlat
	}
}

// Address returns the address of role on node. A missing node or role is an
// error, never "0.0.0.0".
func (t *Topology) Address(node, role string) (string, error) {
	roles, ok := t.Nodes[node]
	if !ok {
		return "", &UnknownNodeError{Node: node}
	}
	addr, ok := roles[role]
	if !ok {
		return "", &UnknownRoleError{Role: role, Node: node}
	}
	return addr, nil
}

// Interface returns the topology-global interface name for role.
func (t *Topology) Interface(role string) (string, error) {
	name, ok := t.Interfaces[role]
	if !ok {
		return "", &UnknownRoleError{Role: role}
	}
	return name, nil
}

// Trunk returns the underlying device that carries VLAN-tagged traffic.
func (t *Topology) Trunk() (string, error) {
	return t.Interface(InterfaceTrunk)
}

// Tags returns the role -> tag mapping effective for node: the per-node
// override map when the negative profile set one, the topology-global map
// otherwise. Callers must not mutate the result.
func (t *Topology) Tags(node string) map[string]int {
	if tags, ok := t.NodeVLANTags[node]; ok {
		return tags
	}
	return t.VLANTags
}

// TagFor returns the VLAN tag effective for role on node. An untagged role
// is an error, never tag zero.
func (t *Topology) TagFor(node, role string) (int, error) {
	tag, ok := t.Tags(node)[role]
	if !ok {
		return 0, &UnknownRoleError{Role: role, Node: node}
	}
	return tag, nil
}

// TagRoles returns the roles carrying a VLAN tag on node, sorted for
// deterministic rendering.
func (t *Topology) TagRoles(node string) []string {
	tags := t.Tags(node)
	roles := make([]string, 0, len(tags))
	for role := range tags {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// InterfaceFor returns the interface name serving role on node. For nodes
// with a per-node tag override the name is derived from the trunk and the
// node's own tag; all other topologies use the global Interfaces map.
func (t *Topology) InterfaceFor(node, role string) (string, error) {
	if tags, ok := t.NodeVLANTags[node]; ok {
		tag, ok := tags[role]
		if !ok {
			return "", &UnknownRoleError{Role: role, Node: node}
		}
		trunk, err := t.Trunk()
		if err != nil {
			return "", err
		}
		return naming.VLANDevice(trunk, tag), nil
	}
	return t.Interface(role)
}

// NodeNames returns all node names, sorted.
func (t *Topology) NodeNames() []string {
	names := make([]string, 0, len(t.Nodes))
	for name := range t.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasNode reports whether the topology defines node.
func (t *Topology) HasNode(node string) bool {
	_, ok := t.Nodes[node]
	return ok
}

// Source returns the effective address source, defaulting to static.
func (t *Topology) Source() AddressSource {
	if t.AddressSource == "" {
		return AddressStatic
	}
	return t.AddressSource
}
