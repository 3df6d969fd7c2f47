package report

import "github.com/robgonnella/vlanscan/internal/discovery"

//go:generate mockgen -destination=../mock/report/mock_report.go -package=mock_report . Sink

// Sink interface for persisting the results of a completed scan
type Sink interface {
	Write(results []discovery.Result) (string, error)
}

// Entry represents a single VLAN in a persisted report
type Entry struct {
	VLANID        int     `json:"vlan_id"`
	IPAddress     *string `json:"ip_address"`
	SubnetMask    string  `json:"subnet_mask,omitempty"`
	PossibleHosts *uint64 `json:"possible_hosts,omitempty"`
}
