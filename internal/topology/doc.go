// Package topology defines the validated in-memory representation of a
// cluster network profile.
//
// A Topology is the single source of truth consumed by both provisioning
// backends: the declarative-OS renderer (internal/platform/nixos), the
// networkd unit file renderer (internal/platform/networkd) and the k3s flag
// deriver (internal/platform/k3s). It is constructed once, validated, and
// read-only for its entire lifetime.
package topology
