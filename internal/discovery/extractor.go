package discovery

import (
	"context"
	"errors"
	"net/netip"
	"regexp"
	"strings"

	"github.com/robgonnella/vlanscan/internal/command"
	"github.com/robgonnella/vlanscan/internal/logger"
)

// matches "inet 192.168.1.1/24" in "ip addr show" output
var inetRegexp = regexp.MustCompile(`inet (?P<cidr>\d+\.\d+\.\d+\.\d+/\d+)`)

// link-local addresses are assigned when no DHCP server answers
const linkLocalPrefix = "169."

// IPExtractor is an implementation of the AddressExtractor interface
// using the "ip" command
type IPExtractor struct {
	executor command.Executor
	log      logger.Logger
}

// NewIPExtractor returns a new instance of IPExtractor
func NewIPExtractor(executor command.Executor) *IPExtractor {
	return &IPExtractor{
		executor: executor,
		log:      logger.New(),
	}
}

// Extract returns the first non link-local IPv4 address assigned to iface,
// or nil if there isn't one. An error is only returned when the command
// could not be spawned.
func (e *IPExtractor) Extract(ctx context.Context, iface string) (*netip.Prefix, error) {
	output, err := e.executor.Run(ctx, addrShowCommand(iface))

	if err != nil {
		var execErr *command.ExecutionError

		if errors.As(err, &execErr) {
			e.log.Warn().
				Str("interface", iface).
				Str("stderr", execErr.Stderr).
				Msg("failed to query interface address")
			return nil, nil
		}

		return nil, err
	}

	e.log.Debug().Str("interface", iface).Msg(output)

	return ParseAddress(output), nil
}

// ParseAddress returns the first "inet" address found in text. Link-local
// and unparseable matches are treated as no address.
func ParseAddress(text string) *netip.Prefix {
	match := inetRegexp.FindStringSubmatch(text)

	if match == nil {
		return nil
	}

	cidr := match[inetRegexp.SubexpIndex("cidr")]

	if strings.HasPrefix(cidr, linkLocalPrefix) {
		return nil
	}

	prefix, err := netip.ParsePrefix(cidr)

	if err != nil || !prefix.Addr().Is4() {
		return nil
	}

	return &prefix
}
