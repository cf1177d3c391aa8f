package topology

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks the topology invariants. Profiles validate on construction
// so renderers can assume a well-formed topology.
func (t *Topology) Validate() error {
	if len(t.Nodes) == 0 {
		return &IncompleteTopologyError{Reason: "no nodes defined"}
	}

	if err := t.validateAddresses(); err != nil {
		return err
	}

	if err := t.validateRoles(); err != nil {
		return err
	}

	if err := t.validateVLANs(); err != nil {
		return err
	}

	if err := t.validateBond(); err != nil {
		return err
	}

	return nil
}

// validateAddresses checks that every node address parses as IPv4. The
// cluster network is IPv4-only.
func (t *Topology) validateAddresses() error {
	for _, node := range t.NodeNames() {
		for role, addr := range t.Nodes[node] {
			ip := net.ParseIP(addr)
			if ip == nil || ip.To4() == nil {
				return &IncompleteTopologyError{
					Reason: fmt.Sprintf("node %q role %q: %q is not an IPv4 address", node, role, addr),
				}
			}
		}
	}
	return nil
}

// validateRoles checks that every node defines every role referenced
// elsewhere in the topology.
func (t *Topology) validateRoles() error {
	referenced := map[string]bool{}
	for role := range t.Interfaces {
		if role != InterfaceTrunk {
			referenced[role] = true
		}
	}
	for role := range t.VLANTags {
		referenced[role] = true
	}

	for _, node := range t.NodeNames() {
		roles := t.Nodes[node]
		for role := range referenced {
			if _, ok := roles[role]; !ok {
				return &UnknownRoleError{Role: role, Node: node}
			}
		}
		// Per-node tags reference roles for that node only.
		for role := range t.NodeVLANTags[node] {
			if _, ok := roles[role]; !ok {
				return &UnknownRoleError{Role: role, Node: node}
			}
		}
	}

	for node := range t.NodeVLANTags {
		if _, ok := t.Nodes[node]; !ok {
			return &UnknownNodeError{Node: node}
		}
	}

	return nil
}

// validateVLANs checks that every trunk-relative interface name has a
// corresponding tag, and that tagged topologies name their trunk.
func (t *Topology) validateVLANs() error {
	tagged := len(t.VLANTags) > 0 || len(t.NodeVLANTags) > 0
	if !tagged {
		return nil
	}

	trunk, ok := t.Interfaces[InterfaceTrunk]
	if !ok {
		return &IncompleteTopologyError{Reason: "vlan tags present but no trunk interface defined"}
	}

	for role, name := range t.Interfaces {
		if role == InterfaceTrunk {
			continue
		}
		if !strings.HasPrefix(name, trunk+".") {
			continue
		}
		if _, ok := t.VLANTags[role]; !ok {
			return &IncompleteTopologyError{
				Reason: fmt.Sprintf("interface %q for role %q is trunk-relative but carries no vlan tag", name, role),
			}
		}
	}

	return nil
}

// validateBond checks the bond spec invariants.
func (t *Topology) validateBond() error {
	if t.Bond == nil {
		if len(t.BondMembers) > 0 {
			return &IncompleteTopologyError{Reason: "bond members listed without a bond spec"}
		}
		return nil
	}

	if t.Bond.Mode == "" {
		return &IncompleteTopologyError{Reason: "bond spec has no mode"}
	}
	if len(t.BondMembers) == 0 {
		return &IncompleteTopologyError{Reason: "bond spec present but member list is empty"}
	}
	if t.Bond.MonitorIntervalMs <= 0 {
		return &IncompleteTopologyError{Reason: "bond spec has no monitor interval"}
	}
	if _, ok := t.Interfaces[InterfaceTrunk]; !ok {
		return &IncompleteTopologyError{Reason: "bond spec present but no trunk interface names the bond device"}
	}

	if t.Bond.Mode == BondModeActiveBackup {
		if t.Bond.PrimaryMember == "" {
			return &IncompleteTopologyError{Reason: "active-backup bond has no primary member"}
		}
		found := false
		for _, m := range t.BondMembers {
			if m == t.Bond.PrimaryMember {
				found = true
				break
			}
		}
		if !found {
			return &IncompleteTopologyError{
				Reason: fmt.Sprintf("primary member %q is not in the bond member list", t.Bond.PrimaryMember),
			}
		}
	}

	return nil
}
