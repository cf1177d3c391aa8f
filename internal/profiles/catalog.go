// Package profiles is the catalog of named topology presets used by the
// integration environments. Presets are pure data construction; each one is
// validated before it leaves the catalog.
package profiles

import (
	"fmt"
	"sort"

	"github.com/k3xlab/k3x/internal/topology"
)

// Preset names.
const (
	Flat       = "flat"
	VLAN       = "vlan"
	BondedVLAN = "bonded-vlan"
	DHCP       = "dhcp"
	// SplitVLAN is the intentionally inconsistent negative profile: it
	// assigns a different cluster VLAN tag per node so downstream systems
	// can prove they detect misconfigured networks.
	SplitVLAN = "split-vlan"
)

// Description holds the catalog metadata shown by the CLI.
type Description struct {
	Name    string
	Summary string
}

var registry = map[string]func() *topology.Topology{
	Flat:       flatProfile,
	VLAN:       vlanProfile,
	BondedVLAN: bondedVLANProfile,
	DHCP:       dhcpProfile,
	SplitVLAN:  splitVLANProfile,
}

var summaries = map[string]string{
	Flat:       "single untagged interface per node",
	VLAN:       "cluster and storage VLANs on a tagged trunk",
	BondedVLAN: "active-backup bond carrying the VLAN trunk",
	DHCP:       "flat topology with externally assigned addresses",
	SplitVLAN:  "negative profile: per-node cluster tags that cannot interoperate",
}

// Names returns the preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns catalog metadata for all presets, sorted by name.
func Describe() []Description {
	var descs []Description
	for _, name := range Names() {
		descs = append(descs, Description{Name: name, Summary: summaries[name]})
	}
	return descs
}

// Get builds and validates the named preset. Every call returns a fresh
// topology; callers own it for the lifetime of one render run.
func Get(name string) (*topology.Topology, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (available: %v)", name, Names())
	}

	topo := build()
	if err := topo.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return topo, nil
}
