package wizard

import "errors"

var (
	errClusterNameRequired = errors.New("cluster name is required")
	errClusterNameInvalid  = errors.New("cluster name must be 1-32 lowercase alphanumeric characters or hyphens, starting and ending with alphanumeric")
	errCIDRInvalid         = errors.New("invalid CIDR format (expected: x.x.x.x/xx)")
	errVersionInvalid      = errors.New("k3s version must start with 'v' (e.g. v1.30.2+k3s1)")
)
