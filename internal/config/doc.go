// Package config loads and validates the k3x cluster configuration file.
//
// A configuration names a catalog profile or embeds a custom topology, plus
// the cluster-level settings (name, k3s version, network CIDRs) both
// provisioning backends share. Any validation failure is a build-time
// configuration defect: callers halt provisioning instead of recovering.
package config
