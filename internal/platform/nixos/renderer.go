package nixos

import (
	"fmt"

	"github.com/k3xlab/k3x/internal/topology"
	"github.com/k3xlab/k3x/internal/util/naming"
)

// Render produces the declarative backend's config fragment for one node.
// It is a pure function: identical inputs yield identical output, and a
// failed render never returns a partial fragment.
func Render(topo *topology.Topology, nodeName string) (*ConfigFragment, error) {
	if !topo.HasNode(nodeName) {
		return nil, &topology.IncompleteTopologyError{
			Reason: fmt.Sprintf("node %q not defined in topology", nodeName),
		}
	}

	switch topo.Mode() {
	case topology.ModeFlat:
		return renderFlat(topo, nodeName)
	case topology.ModeDHCPAssigned:
		return renderDHCP(topo, nodeName)
	case topology.ModeVLAN, topology.ModeInconsistent:
		return renderVLAN(topo, nodeName, "")
	case topology.ModeBondedVLAN:
		return renderBonded(topo, nodeName)
	default:
		return nil, &topology.IncompleteTopologyError{
			Reason: fmt.Sprintf("unhandled topology mode %q", topo.Mode()),
		}
	}
}

// renderFlat binds the cluster address directly to the physical interface.
// No virtual devices are needed.
func renderFlat(topo *topology.Topology, nodeName string) (*ConfigFragment, error) {
	addr, err := topo.Address(nodeName, topology.RoleCluster)
	if err != nil {
		return nil, err
	}
	iface, err := topo.Interface(topology.RoleCluster)
	if err != nil {
		return nil, err
	}

	return &ConfigFragment{
		Bindings: []Binding{{
			Device:            iface,
			Address:           addr,
			PrefixLength:      topology.AddressPrefixLen,
			RequiredForOnline: true,
		}},
	}, nil
}

// renderDHCP has the same device/binding shape as flat, except the address
// source is externally assigned. MAC-to-address reservations are supplied to
// the lease service separately by the caller.
func renderDHCP(topo *topology.Topology, nodeName string) (*ConfigFragment, error) {
	iface, err := topo.Interface(topology.RoleCluster)
	if err != nil {
		return nil, err
	}

	return &ConfigFragment{
		Bindings: []Binding{{
			Device:             iface,
			ExternallyAssigned: true,
			RequiredForOnline:  true,
		}},
	}, nil
}

// renderVLAN defines one VLAN device per tagged role plus its address
// binding, and a trunk binding declaring the attached VLAN names. When
// parent is empty the trunk interface is used; the bonded branch passes the
// bond device instead.
func renderVLAN(topo *topology.Topology, nodeName, parent string) (*ConfigFragment, error) {
	if parent == "" {
		trunk, err := topo.Trunk()
		if err != nil {
			return nil, err
		}
		parent = trunk
	}

	frag := &ConfigFragment{}
	tags := topo.Tags(nodeName)

	var vlanNames []string
	var vlanBindings []Binding
	for _, role := range topo.TagRoles(nodeName) {
		tag := tags[role]
		name := naming.VLANDevice(parent, tag)

		addr, err := topo.Address(nodeName, role)
		if err != nil {
			return nil, err
		}

		frag.Devices = append(frag.Devices, Device{
			Name:    name,
			Kind:    DeviceVLAN,
			Parent:  parent,
			VLANTag: tag,
		})
		vlanNames = append(vlanNames, name)
		vlanBindings = append(vlanBindings, Binding{
			Device:            name,
			Address:           addr,
			PrefixLength:      topology.AddressPrefixLen,
			RequiredForOnline: role == topology.RoleCluster,
		})
	}

	// The trunk binding carries no address; it only declares which VLAN
	// devices hang off it so the backend orders device creation correctly.
	frag.Bindings = append(frag.Bindings, Binding{
		Device: parent,
		VLANs:  vlanNames,
	})
	frag.Bindings = append(frag.Bindings, vlanBindings...)

	return frag, nil
}

// renderBonded defines the bond device and one binding per member, then
// layers the VLAN branch on top of the bond instead of a bare trunk. Only
// the cluster-role VLAN binding is required for online; the downstream
// startup sequencing depends on that ordering.
func renderBonded(topo *topology.Topology, nodeName string) (*ConfigFragment, error) {
	bondName, err := topo.Trunk()
	if err != nil {
		return nil, err
	}

	opts := &BondOptions{
		Mode:         topo.Bond.Mode,
		MIIMonitorMs: topo.Bond.MonitorIntervalMs,
	}
	// Only active-backup designates a primary; other modes ignore the field
	// entirely so both backends stay silent about it.
	if topo.Bond.Mode == topology.BondModeActiveBackup {
		opts.PrimaryMember = topo.Bond.PrimaryMember
		opts.PrimaryReselect = "always"
	}

	frag := &ConfigFragment{
		Devices: []Device{{
			Name: bondName,
			Kind: DeviceBond,
			Bond: opts,
		}},
	}

	for _, member := range topo.BondMembers {
		frag.Bindings = append(frag.Bindings, Binding{
			Device:        member,
			MemberOf:      bondName,
			PrimaryMember: member == topo.Bond.PrimaryMember && topo.Bond.Mode == topology.BondModeActiveBackup,
		})
	}

	vlan, err := renderVLAN(topo, nodeName, bondName)
	if err != nil {
		return nil, err
	}
	frag.Devices = append(frag.Devices, vlan.Devices...)
	frag.Bindings = append(frag.Bindings, vlan.Bindings...)

	return frag, nil
}
