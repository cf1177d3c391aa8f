package config

import (
	"encoding/binary"
	"fmt"
	"net"
)

// CIDRSubnet calculates a child subnet of prefix, extending the mask by
// newbits and selecting the zero-based subnet netnum. Only IPv4 prefixes are
// supported; the cluster network is IPv4-only.
func CIDRSubnet(prefix string, newbits, netnum int) (string, error) {
	_, network, err := net.ParseCIDR(prefix)
	if err != nil {
		return "", fmt.Errorf("invalid CIDR prefix: %w", err)
	}

	ip := network.IP.To4()
	if ip == nil {
		return "", fmt.Errorf("only IPv4 prefixes are supported, got %s", prefix)
	}

	maskSize, totalBits := network.Mask.Size()
	newMaskSize := maskSize + newbits
	if newMaskSize > totalBits {
		return "", fmt.Errorf("prefix extension of %d bits is too large for %s", newbits, prefix)
	}
	if netnum >= 1<<newbits {
		return "", fmt.Errorf("subnet number %d exceeds the %d subnets available", netnum, 1<<newbits)
	}

	base := binary.BigEndian.Uint32(ip)
	base += uint32(netnum) << (totalBits - newMaskSize)

	out := make(net.IP, 4)
	binary.BigEndian.PutUint32(out, base)
	return fmt.Sprintf("%s/%d", out, newMaskSize), nil
}
