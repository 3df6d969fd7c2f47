package core

import (
	"context"

	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/robgonnella/vlanscan/internal/discovery"
	"github.com/robgonnella/vlanscan/internal/logger"
	"github.com/robgonnella/vlanscan/internal/report"
)

// Core represents our core data structure
type Core struct {
	conf   config.Config
	prober discovery.Prober
	sink   report.Sink
	log    logger.Logger
}

// New returns new core module for given configuration
func New(conf config.Config, prober discovery.Prober, sink report.Sink) *Core {
	return &Core{
		conf:   conf,
		prober: prober,
		sink:   sink,
		log:    logger.New(),
	}
}

// Conf returns the settings this core scans with
func (c *Core) Conf() config.Config {
	return c.conf
}

// Run scans the full configured range and writes the report, returning
// the path of the report file
func (c *Core) Run(ctx context.Context) (string, error) {
	results, err := c.Scan(ctx)

	if err != nil {
		return "", err
	}

	reportFile, err := c.sink.Write(results)

	if err != nil {
		return "", err
	}

	c.log.Info().
		Str("report", reportFile).
		Int("found", len(results)).
		Msg("Finished checking all VLANs")

	return reportFile, nil
}

// Scan probes every VLAN ID in the configured range in ascending order, one
// at a time, and returns the VLANs that yielded an address in that order.
// The only error that stops a scan early is a failure to spawn a command.
func (c *Core) Scan(ctx context.Context) ([]discovery.Result, error) {
	wait := c.conf.WaitDuration()

	c.log.Info().
		Str("interface", c.conf.Interface).
		Int("start", c.conf.RangeStart).
		Int("end", c.conf.RangeEnd).
		Str("wait", wait.String()).
		Msg("Starting checks")

	results := []discovery.Result{}

	for vlanID := c.conf.RangeStart; vlanID <= c.conf.RangeEnd; vlanID++ {
		result, err := c.prober.Probe(ctx, c.conf.Interface, vlanID, wait)

		if err != nil {
			c.log.Error().Err(err).Int("vlan", vlanID).Msg("aborting scan")
			return nil, err
		}

		if result != nil {
			results = append(results, *result)
		}
	}

	return results, nil
}
