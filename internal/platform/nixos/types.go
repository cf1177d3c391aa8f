package nixos

import "sigs.k8s.io/yaml"

// DeviceKind is the kind of a virtual network device.
type DeviceKind string

const (
	// DeviceVLAN is an 802.1Q tag device on top of a parent.
	DeviceVLAN DeviceKind = "vlan"
	// DeviceBond is a link-aggregation device combining physical members.
	DeviceBond DeviceKind = "bond"
)

// BondOptions carries the bond parameters of a DeviceBond definition.
type BondOptions struct {
	Mode            string `json:"mode"`
	MIIMonitorMs    int    `json:"miiMonitorMs"`
	PrimaryMember   string `json:"primaryMember,omitempty"`
	PrimaryReselect string `json:"primaryReselect,omitempty"`
}

// Device defines one virtual device the backend must create.
type Device struct {
	Name string     `json:"name"`
	Kind DeviceKind `json:"kind"`

	// Parent and VLANTag are set for DeviceVLAN.
	Parent  string `json:"parent,omitempty"`
	VLANTag int    `json:"vlanTag,omitempty"`

	// Bond is set for DeviceBond.
	Bond *BondOptions `json:"bond,omitempty"`
}

// Binding attaches addresses and policy flags to a device. Auto-configuration
// (DHCP, link-local, IPv6 RA) is always disabled except for externally
// assigned bindings; the cluster network is IPv4-only and fully statically or
// DHCP-explicitly managed, never mixed.
type Binding struct {
	// Device is the match-by-name clause.
	Device string `json:"device"`

	// Address is the literal IPv4 address, empty for trunk, member and
	// externally assigned bindings.
	Address      string `json:"address,omitempty"`
	PrefixLength int    `json:"prefixLength,omitempty"`

	// ExternallyAssigned marks the address source as a companion lease
	// service instead of a literal address.
	ExternallyAssigned bool `json:"externallyAssigned,omitempty"`

	// MemberOf marks the device as owned by a bond; such bindings carry no
	// address and explicitly disable per-member auto-configuration.
	MemberOf string `json:"memberOf,omitempty"`

	// PrimaryMember marks the preferred member of an active-backup bond.
	PrimaryMember bool `json:"primaryMember,omitempty"`

	// VLANs lists attached VLAN device names on a trunk binding. This is a
	// dependency declaration only; the trunk itself carries no address.
	VLANs []string `json:"vlans,omitempty"`

	// RequiredForOnline feeds the consumer's startup-ordering logic.
	RequiredForOnline bool `json:"requiredForOnline"`
}

// ConfigFragment is the renderer output: two ordered collections merged by
// the backend with its documented, deterministic reducer.
type ConfigFragment struct {
	Devices  []Device  `json:"devices,omitempty"`
	Bindings []Binding `json:"bindings"`
}

// Marshal renders the fragment as YAML for inspection. The consuming backend
// owns the final wire format; this is a debugging and review surface.
func (f *ConfigFragment) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
