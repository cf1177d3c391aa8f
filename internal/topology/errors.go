package topology

import "fmt"

// UnknownNodeError is returned when a node name is not present in the
// topology's node map.
type UnknownNodeError struct {
	Node string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %q in topology", e.Node)
}

// UnknownRoleError is returned when a role lookup (interface, address or VLAN
// tag) references a role the topology does not define. A missing key is
// always an error; the compiler never substitutes a zero value.
type UnknownRoleError struct {
	Role string
	Node string // empty for topology-level lookups
}

func (e *UnknownRoleError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("unknown role %q for node %q", e.Role, e.Node)
	}
	return fmt.Sprintf("unknown role %q in topology", e.Role)
}

// IncompleteTopologyError is returned when the topology's mode implies a
// field that is missing or malformed, such as a bond spec without members or
// a render call for a node the topology does not define.
type IncompleteTopologyError struct {
	Reason string
}

func (e *IncompleteTopologyError) Error() string {
	return fmt.Sprintf("incomplete topology: %s", e.Reason)
}
