package util

import (
	"net"
	"net/netip"

	"github.com/projectdiscovery/mapcidr"
)

// SubnetMask returns the dotted-decimal mask for an IPv4 prefix,
// e.g. "255.255.255.0" for a /24
func SubnetMask(prefix netip.Prefix) string {
	return net.IP(net.CIDRMask(prefix.Bits(), 32)).String()
}

// PossibleHosts returns the number of usable host addresses in the network
// containing prefix. /31 and /32 networks have no network or broadcast
// address to exclude.
func PossibleHosts(prefix netip.Prefix) uint64 {
	switch prefix.Bits() {
	case 32:
		return 1
	case 31:
		return 2
	}

	ipnet := &net.IPNet{
		IP:   net.IP(prefix.Masked().Addr().AsSlice()),
		Mask: net.CIDRMask(prefix.Bits(), 32),
	}

	return mapcidr.CountIPsInCIDR(false, false, ipnet).Uint64()
}
