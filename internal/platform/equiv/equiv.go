// Package equiv normalizes the two renderer outputs into a common
// device/binding graph so they can be compared for semantic equivalence.
// Dual-backend equivalence is the defining correctness property of the
// topology compiler: one topology must yield identical network behavior
// whether a node is provisioned declaratively or from an image.
package equiv

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/k3xlab/k3x/internal/platform/nixos"
)

// Device is the backend-neutral form of a virtual device definition.
type Device struct {
	Kind      string
	Parent    string
	Tag       int
	BondMode  string
	MonitorMs int
	Primary   string
	Reselect  string
}

// Binding is the backend-neutral form of an address/policy binding.
type Binding struct {
	Address        string
	Prefix         int
	External       bool
	MemberOf       string
	Primary        bool
	VLANs          []string
	RequiredOnline bool
}

// Graph is the normalized device/binding graph implied by one renderer's
// output for one node.
type Graph struct {
	Devices  map[string]Device
	Bindings map[string]Binding
}

// FromFragment normalizes a declarative config fragment.
func FromFragment(frag *nixos.ConfigFragment) *Graph {
	g := &Graph{
		Devices:  map[string]Device{},
		Bindings: map[string]Binding{},
	}

	for _, d := range frag.Devices {
		dev := Device{
			Kind:   string(d.Kind),
			Parent: d.Parent,
			Tag:    d.VLANTag,
		}
		if d.Bond != nil {
			dev.BondMode = d.Bond.Mode
			dev.MonitorMs = d.Bond.MIIMonitorMs
			dev.Primary = d.Bond.PrimaryMember
			dev.Reselect = d.Bond.PrimaryReselect
		}
		g.Devices[d.Name] = dev
	}

	for _, b := range frag.Bindings {
		vlans := append([]string(nil), b.VLANs...)
		sort.Strings(vlans)
		g.Bindings[b.Device] = Binding{
			Address:        b.Address,
			Prefix:         b.PrefixLength,
			External:       b.ExternallyAssigned,
			MemberOf:       b.MemberOf,
			Primary:        b.PrimaryMember,
			VLANs:          vlans,
			RequiredOnline: b.RequiredForOnline,
		}
	}

	return g
}

// FromUnitFiles normalizes a rendered networkd file set by parsing it back
// into the graph form. Parsing our own output keeps the comparison honest:
// the graph reflects what the daemon would actually read.
func FromUnitFiles(files map[string]string) (*Graph, error) {
	g := &Graph{
		Devices:  map[string]Device{},
		Bindings: map[string]Binding{},
	}

	// Parent links are declared on the trunk binding (VLAN= entries), so
	// bindings are parsed first and parents resolved afterwards.
	vlanParents := map[string]string{}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sections, err := parseUnit(files[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		switch {
		case strings.HasSuffix(name, ".netdev"):
			if err := addNetdev(g, sections); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		case strings.HasSuffix(name, ".network"):
			if err := addNetwork(g, sections, vlanParents); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		default:
			return nil, fmt.Errorf("%s: unrecognized unit file suffix", name)
		}
	}

	for vlan, parent := range vlanParents {
		dev, ok := g.Devices[vlan]
		if !ok {
			return nil, fmt.Errorf("trunk %s attaches undefined vlan device %s", parent, vlan)
		}
		dev.Parent = parent
		g.Devices[vlan] = dev
	}

	return g, nil
}

// Equal reports whether two graphs describe the same devices and bindings.
func (g *Graph) Equal(other *Graph) bool {
	return len(g.Diff(other)) == 0
}

// Diff returns human-readable differences between two graphs, empty when the
// graphs are isomorphic.
func (g *Graph) Diff(other *Graph) []string {
	var diffs []string

	for _, name := range sortedKeys(g.Devices) {
		o, ok := other.Devices[name]
		if !ok {
			diffs = append(diffs, fmt.Sprintf("device %q missing from second graph", name))
			continue
		}
		if g.Devices[name] != o {
			diffs = append(diffs, fmt.Sprintf("device %q differs: %+v vs %+v", name, g.Devices[name], o))
		}
	}
	for _, name := range sortedKeys(other.Devices) {
		if _, ok := g.Devices[name]; !ok {
			diffs = append(diffs, fmt.Sprintf("device %q missing from first graph", name))
		}
	}

	for _, name := range sortedKeys(g.Bindings) {
		o, ok := other.Bindings[name]
		if !ok {
			diffs = append(diffs, fmt.Sprintf("binding %q missing from second graph", name))
			continue
		}
		if !bindingEqual(g.Bindings[name], o) {
			diffs = append(diffs, fmt.Sprintf("binding %q differs: %+v vs %+v", name, g.Bindings[name], o))
		}
	}
	for _, name := range sortedKeys(other.Bindings) {
		if _, ok := g.Bindings[name]; !ok {
			diffs = append(diffs, fmt.Sprintf("binding %q missing from first graph", name))
		}
	}

	return diffs
}

func bindingEqual(a, b Binding) bool {
	if a.Address != b.Address || a.Prefix != b.Prefix || a.External != b.External ||
		a.MemberOf != b.MemberOf || a.Primary != b.Primary || a.RequiredOnline != b.RequiredOnline {
		return false
	}
	if len(a.VLANs) != len(b.VLANs) {
		return false
	}
	for i := range a.VLANs {
		if a.VLANs[i] != b.VLANs[i] {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// unitSection is one [Section] of a unit file. Repeated keys (VLAN=) are
// preserved in order.
type unitSection struct {
	name    string
	entries []entry
}

type entry struct {
	key, value string
}

func (s *unitSection) get(key string) string {
	for _, e := range s.entries {
		if e.key == key {
			return e.value
		}
	}
	return ""
}

func (s *unitSection) all(key string) []string {
	var values []string
	for _, e := range s.entries {
		if e.key == key {
			values = append(values, e.value)
		}
	}
	return values
}

func parseUnit(content string) ([]unitSection, error) {
	var sections []unitSection
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, unitSection{name: line[1 : len(line)-1]})
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		if len(sections) == 0 {
			return nil, fmt.Errorf("entry %q before any section", line)
		}
		last := &sections[len(sections)-1]
		last.entries = append(last.entries, entry{key: key, value: value})
	}
	return sections, nil
}

func findSection(sections []unitSection, name string) *unitSection {
	for i := range sections {
		if sections[i].name == name {
			return &sections[i]
		}
	}
	return nil
}

func addNetdev(g *Graph, sections []unitSection) error {
	netdev := findSection(sections, "NetDev")
	if netdev == nil {
		return fmt.Errorf("no [NetDev] section")
	}
	name := netdev.get("Name")
	if name == "" {
		return fmt.Errorf("device definition has no Name")
	}

	dev := Device{Kind: netdev.get("Kind")}
	switch dev.Kind {
	case "vlan":
		vlan := findSection(sections, "VLAN")
		if vlan == nil {
			return fmt.Errorf("vlan device %q has no [VLAN] section", name)
		}
		tag, err := strconv.Atoi(vlan.get("Id"))
		if err != nil {
			return fmt.Errorf("vlan device %q: bad Id: %w", name, err)
		}
		dev.Tag = tag
	case "bond":
		bond := findSection(sections, "Bond")
		if bond == nil {
			return fmt.Errorf("bond device %q has no [Bond] section", name)
		}
		dev.BondMode = bond.get("Mode")
		dev.Reselect = bond.get("PrimaryReselectPolicy")
		ms, err := parseMillis(bond.get("MIIMonitorSec"))
		if err != nil {
			return fmt.Errorf("bond device %q: %w", name, err)
		}
		dev.MonitorMs = ms
	default:
		return fmt.Errorf("device %q has unsupported kind %q", name, dev.Kind)
	}

	g.Devices[name] = dev
	return nil
}

func addNetwork(g *Graph, sections []unitSection, vlanParents map[string]string) error {
	match := findSection(sections, "Match")
	if match == nil {
		return fmt.Errorf("no [Match] section")
	}
	name := match.get("Name")
	if name == "" {
		return fmt.Errorf("binding has no match name")
	}

	network := findSection(sections, "Network")
	if network == nil {
		return fmt.Errorf("binding %q has no [Network] section", name)
	}

	b := Binding{
		External: network.get("DHCP") == "ipv4",
		MemberOf: network.get("Bond"),
		Primary:  network.get("PrimarySlave") == "true",
	}

	if link := findSection(sections, "Link"); link != nil {
		b.RequiredOnline = link.get("RequiredForOnline") == "yes"
	}

	if addr := network.get("Address"); addr != "" {
		ip, prefix, ok := strings.Cut(addr, "/")
		if !ok {
			return fmt.Errorf("binding %q: address %q has no prefix length", name, addr)
		}
		n, err := strconv.Atoi(prefix)
		if err != nil {
			return fmt.Errorf("binding %q: bad prefix length: %w", name, err)
		}
		b.Address = ip
		b.Prefix = n
	}

	vlans := network.all("VLAN")
	sort.Strings(vlans)
	b.VLANs = vlans
	for _, v := range vlans {
		vlanParents[v] = name
	}

	// When the bond's primary member is carried on the device definition
	// (declarative side) it maps onto the member binding here.
	if b.Primary && b.MemberOf != "" {
		dev, ok := g.Devices[b.MemberOf]
		if ok {
			dev.Primary = name
			g.Devices[b.MemberOf] = dev
		}
	}

	g.Bindings[name] = b
	return nil
}

func parseMillis(s string) (int, error) {
	ms, ok := strings.CutSuffix(s, "ms")
	if !ok {
		return 0, fmt.Errorf("monitor interval %q is not in milliseconds", s)
	}
	n, err := strconv.Atoi(ms)
	if err != nil {
		return 0, fmt.Errorf("bad monitor interval %q: %w", s, err)
	}
	return n, nil
}
