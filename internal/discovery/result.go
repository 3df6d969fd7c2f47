package discovery

// Result represents a VLAN that yielded a usable address
type Result struct {
	VLANID    int
	IPAddress *string
}

// NewResult returns a Result for vlanID with the given address
func NewResult(vlanID int, ip string) *Result {
	return &Result{
		VLANID:    vlanID,
		IPAddress: &ip,
	}
}
