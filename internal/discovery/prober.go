package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/robgonnella/vlanscan/internal/command"
	"github.com/robgonnella/vlanscan/internal/logger"
)

// ProberOption sets optional fields on VLANProber
type ProberOption func(p *VLANProber)

// WithSleeper overrides the Sleeper used for the DHCP wait
func WithSleeper(sleeper Sleeper) ProberOption {
	return func(p *VLANProber) {
		p.sleeper = sleeper
	}
}

// VLANProber is an implementation of the Prober interface that creates a
// tagged sub-interface with the "ip" command and waits for DHCP
type VLANProber struct {
	executor  command.Executor
	extractor AddressExtractor
	sleeper   Sleeper
	log       logger.Logger
}

// NewVLANProber returns a new instance of VLANProber
func NewVLANProber(
	executor command.Executor,
	extractor AddressExtractor,
	options ...ProberOption,
) *VLANProber {
	p := &VLANProber{
		executor:  executor,
		extractor: extractor,
		sleeper:   clock.New(),
		log:       logger.New(),
	}

	for _, o := range options {
		o(p)
	}

	return p
}

// Probe creates and activates the sub-interface for vlanID, waits for a
// lease, then reads its address. Failures to create or activate the link
// are logged and the remaining steps still run. A nil result means the VLAN
// yielded no usable address. Only spawn failures are returned as errors.
func (p *VLANProber) Probe(
	ctx context.Context,
	iface string,
	vlanID int,
	wait time.Duration,
) (*Result, error) {
	vlanIface := SubInterfaceName(iface, vlanID)

	p.log.Info().Int("vlan", vlanID).Msg("Checking VLAN")

	createCmd := createLinkCommand(iface, vlanIface, vlanID)

	if err := p.run(ctx, createCmd); err != nil {
		return nil, err
	}

	p.log.Info().Str("interface", vlanIface).Msg("setting link up")

	if err := p.run(ctx, linkUpCommand(vlanIface)); err != nil {
		return nil, err
	}

	p.log.Info().Str("wait", wait.String()).Msg("Waiting for DHCP")

	p.sleeper.Sleep(wait)

	ip, err := p.extractor.Extract(ctx, vlanIface)

	if err != nil {
		return nil, err
	}

	if ip == nil {
		p.log.Info().Int("vlan", vlanID).Msg("NO IP")
		return nil, nil
	}

	p.log.Info().
		Int("vlan", vlanID).
		Str("ip", ip.String()).
		Msg("VLAN has IP")

	return NewResult(vlanID, ip.String()), nil
}

// run executes a best-effort step. Execution failures are logged and
// swallowed so the probe can continue.
func (p *VLANProber) run(ctx context.Context, cmd string) error {
	p.log.Info().Msg(cmd)

	out, err := p.executor.Run(ctx, cmd)

	if err == nil {
		p.log.Info().Str("output", out).Msg("Success")
		return nil
	}

	var execErr *command.ExecutionError

	if errors.As(err, &execErr) {
		p.log.Warn().
			Int("status", execErr.ExitCode).
			Str("stderr", execErr.Stderr).
			Msg("Error")
		return nil
	}

	return err
}

// SubInterfaceName returns the name of the tagged sub-interface for vlanID
func SubInterfaceName(iface string, vlanID int) string {
	return fmt.Sprintf("%s.%d", iface, vlanID)
}

func createLinkCommand(iface, vlanIface string, vlanID int) string {
	return fmt.Sprintf(
		"ip link add link %s name %s type vlan id %d",
		iface,
		vlanIface,
		vlanID,
	)
}

func linkUpCommand(vlanIface string) string {
	return fmt.Sprintf("ip link set up %s", vlanIface)
}

func addrShowCommand(iface string) string {
	return fmt.Sprintf("ip addr show %s", iface)
}
