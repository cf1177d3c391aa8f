package networkd

import (
	"fmt"

	"github.com/k3xlab/k3x/internal/topology"
	"github.com/k3xlab/k3x/internal/util/naming"
)

// Render produces the networkd unit files for one node as a filename ->
// content map. It is pure and byte-deterministic: map iteration never leaks
// into output because content only depends on sorted role order.
func Render(topo *topology.Topology, nodeName string) (map[string]string, error) {
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

// renderFlat emits a single address binding for the physical interface and
// no device definitions.
func renderFlat(topo *topology.Topology, nodeName string) (map[string]string, error) {
	addr, err := topo.Address(nodeName, topology.RoleCluster)
	if err != nil {
		return nil, err
	}
	iface, err := topo.Interface(topology.RoleCluster)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		naming.NetworkFile(prefixTrunkBinding, iface): addressNetwork(iface, addr, true),
	}, nil
}

// renderDHCP emits the flat shape with the address marked as externally
// assigned.
func renderDHCP(topo *topology.Topology, nodeName string) (map[string]string, error) {
	iface, err := topo.Interface(topology.RoleCluster)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		naming.NetworkFile(prefixTrunkBinding, iface): dhcpNetwork(iface, true),
	}, nil
}

// renderVLAN emits the trunk binding, one .netdev per tagged role and one
// address binding per VLAN device. The trunk binding's prefix sorts before
// the VLAN device prefixes, which sort before the VLAN binding prefixes.
func renderVLAN(topo *topology.Topology, nodeName, parent string) (map[string]string, error) {
	if parent == "" {
		trunk, err := topo.Trunk()
		if err != nil {
			return nil, err
		}
		parent = trunk
	}

	files := map[string]string{}
	tags := topo.Tags(nodeName)

	var vlanNames []string
	for _, role := range topo.TagRoles(nodeName) {
		tag := tags[role]
		name := naming.VLANDevice(parent, tag)

		addr, err := topo.Address(nodeName, role)
		if err != nil {
			return nil, err
		}

		vlanNames = append(vlanNames, name)
		files[naming.NetdevFile(prefixVLANDevice, name)] = vlanNetdev(name, tag)
		files[naming.NetworkFile(prefixVLANBinding, name)] = addressNetwork(name, addr, role == topology.RoleCluster)
	}

	files[naming.NetworkFile(prefixTrunkBinding, parent)] = trunkNetwork(parent, vlanNames)

	return files, nil
}

// renderBonded emits the bond device first, then one binding per member
// joining it into the bond, then the VLAN layer on top of the bond device.
func renderBonded(topo *topology.Topology, nodeName string) (map[string]string, error) {
	bondName, err := topo.Trunk()
	if err != nil {
		return nil, err
	}

	files, err := renderVLAN(topo, nodeName, bondName)
	if err != nil {
		return nil, err
	}

	files[naming.NetdevFile(prefixBondDevice, bondName)] = bondNetdev(bondName, topo.Bond)

	for _, member := range topo.BondMembers {
		primary := member == topo.Bond.PrimaryMember && topo.Bond.Mode == topology.BondModeActiveBackup
		files[naming.NetworkFile(prefixMemberBinding, member)] = memberNetwork(member, bondName, primary)
	}

	return files, nil
}
