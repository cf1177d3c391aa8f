// Package networkd renders a topology into systemd-networkd unit files for
// the image-based backend.
//
// Filenames carry a two-digit priority prefix followed by a device-derived
// stem. The prefixes are a contract with networkd's lexicographic processing
// order: bond and trunk definitions must sort before the VLAN devices that
// depend on them, which must sort before the VLAN address bindings. The
// rendered files must be semantically equivalent to the declarative
// fragment produced by internal/platform/nixos for the same inputs.
package networkd
