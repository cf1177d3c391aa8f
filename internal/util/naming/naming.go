package naming

import "fmt"

// Naming functions for network devices and unit files.
// Both renderers must agree on these names so that the declarative backend
// and the networkd unit files describe the same device graph.

// VLANDevice returns the name of a VLAN virtual device on top of parent,
// e.g. "eth1.200" or "bond0.200".
func VLANDevice(parent string, tag int) string {
	return fmt.Sprintf("%s.%d", parent, tag)
}

// NetdevFile returns a device-definition filename. The numeric prefix is a
// contract with the consuming daemon's lexicographic processing order.
func NetdevFile(prefix int, stem string) string {
	return fmt.Sprintf("%02d-%s.netdev", prefix, stem)
}

// NetworkFile returns an address/policy-binding filename.
func NetworkFile(prefix int, stem string) string {
	return fmt.Sprintf("%02d-%s.network", prefix, stem)
}
