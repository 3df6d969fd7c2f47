package test_util

import "fmt"

// IPAddrShowOutput returns "ip addr show" output for iface with each of the
// given cidrs listed as an inet line
func IPAddrShowOutput(iface string, cidrs ...string) string {
	out := fmt.Sprintf(
		"5: %s@eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500 qdisc noqueue state UP group default qlen 1000\n"+
			"    link/ether 52:54:00:12:34:56 brd ff:ff:ff:ff:ff:ff\n",
		iface,
	)

	for _, cidr := range cidrs {
		out += fmt.Sprintf(
			"    inet %s brd 0.0.0.0 scope global dynamic %s\n"+
				"       valid_lft 86395sec preferred_lft 86395sec\n",
			cidr,
			iface,
		)
	}

	out += "    inet6 fe80::5054:ff:fe12:3456/64 scope link\n" +
		"       valid_lft forever preferred_lft forever\n"

	return out
}
