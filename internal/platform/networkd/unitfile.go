package networkd

import (
	"fmt"
	"strings"

	"github.com/k3xlab/k3x/internal/topology"
)

// Priority prefixes. Exact values are load-bearing: the consuming daemon
// processes files in lexicographic order, so bond devices must exist before
// the VLANs stacked on them, and VLAN devices before their address bindings.
const (
	prefixBondDevice    = 10
	prefixTrunkBinding  = 15
	prefixVLANDevice    = 20
	prefixMemberBinding = 20
	prefixVLANBinding   = 30
)

// vlanNetdev renders the device definition for an 802.1Q tag device.
func vlanNetdev(name string, tag int) string {
	var b strings.Builder
	section(&b, "NetDev",
		kv("Name", name),
		kv("Kind", "vlan"),
	)
	section(&b, "VLAN",
		kv("Id", fmt.Sprintf("%d", tag)),
	)
	return b.String()
}

// bondNetdev renders the device definition for a bonded device.
func bondNetdev(name string, spec *topology.BondSpec) string {
	bond := []string{
		kv("Mode", spec.Mode),
		kv("MIIMonitorSec", fmt.Sprintf("%dms", spec.MonitorIntervalMs)),
	}
	if spec.Mode == topology.BondModeActiveBackup {
		bond = append(bond, kv("PrimaryReselectPolicy", "always"))
	}

	var b strings.Builder
	section(&b, "NetDev",
		kv("Name", name),
		kv("Kind", "bond"),
	)
	section(&b, "Bond", bond...)
	return b.String()
}

// addressNetwork renders a static address binding. Link-local and IPv6
// autoconfiguration are always off: the cluster network is IPv4-only and
// never mixes static and autoconfigured addresses.
func addressNetwork(matchName, addr string, requiredOnline bool) string {
	var b strings.Builder
	matchSection(&b, matchName, requiredOnline)
	section(&b, "Network",
		kv("DHCP", "no"),
		kv("Address", fmt.Sprintf("%s/%d", addr, topology.AddressPrefixLen)),
		kv("LinkLocalAddressing", "no"),
		kv("IPv6AcceptRA", "no"),
	)
	return b.String()
}

// dhcpNetwork renders a binding whose address is externally assigned by the
// companion lease service.
func dhcpNetwork(matchName string, requiredOnline bool) string {
	var b strings.Builder
	matchSection(&b, matchName, requiredOnline)
	section(&b, "Network",
		kv("DHCP", "ipv4"),
		kv("LinkLocalAddressing", "no"),
		kv("IPv6AcceptRA", "no"),
	)
	return b.String()
}

// trunkNetwork renders the addressless binding for the trunk (or bond)
// device, declaring the VLAN devices attached to it.
func trunkNetwork(matchName string, vlans []string) string {
	network := []string{
		kv("DHCP", "no"),
		kv("LinkLocalAddressing", "no"),
		kv("IPv6AcceptRA", "no"),
	}
	for _, v := range vlans {
		network = append(network, kv("VLAN", v))
	}

	var b strings.Builder
	matchSection(&b, matchName, false)
	section(&b, "Network", network...)
	return b.String()
}

// memberNetwork renders the binding of one physical member into a bond.
// Per-member autoconfiguration is explicitly disabled.
func memberNetwork(member, bond string, primary bool) string {
	network := []string{
		kv("Bond", bond),
		kv("DHCP", "no"),
		kv("LinkLocalAddressing", "no"),
		kv("IPv6AcceptRA", "no"),
	}
	if primary {
		network = append(network, kv("PrimarySlave", "true"))
	}

	var b strings.Builder
	matchSection(&b, member, false)
	section(&b, "Network", network...)
	return b.String()
}

// matchSection writes the [Match] and [Link] sections shared by all
// .network files.
func matchSection(b *strings.Builder, name string, requiredOnline bool) {
	section(b, "Match", kv("Name", name))
	online := "no"
	if requiredOnline {
		online = "yes"
	}
	section(b, "Link", kv("RequiredForOnline", online))
}

func section(b *strings.Builder, name string, entries ...string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "[%s]\n", name)
	for _, e := range entries {
		b.WriteString(e)
		b.WriteString("\n")
	}
}

func kv(key, value string) string {
	return key + "=" + value
}
