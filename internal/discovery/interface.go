package discovery

import (
	"context"
	"net/netip"
	"time"
)

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . AddressExtractor,Prober,Sleeper

// AddressExtractor interface for reading the assigned address of an interface
type AddressExtractor interface {
	Extract(ctx context.Context, iface string) (*netip.Prefix, error)
}

// Prober interface for probing a single VLAN ID on an interface
type Prober interface {
	Probe(ctx context.Context, iface string, vlanID int, wait time.Duration) (*Result, error)
}

// Sleeper blocks the calling goroutine for a duration
type Sleeper interface {
	Sleep(d time.Duration)
}
