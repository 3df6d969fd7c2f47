package core

import (
	"github.com/robgonnella/vlanscan/internal/command"
	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/robgonnella/vlanscan/internal/discovery"
	"github.com/robgonnella/vlanscan/internal/report"
)

// CreateNewAppCore creates and returns a new instance of *core.Core that
// probes the host with the "ip" command and writes json reports
func CreateNewAppCore(conf config.Config) (*Core, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	executor := command.NewShellExecutor()

	extractor := discovery.NewIPExtractor(executor)

	prober := discovery.NewVLANProber(executor, extractor)

	sink := report.NewJSONFileSink(
		conf.OutputDir,
		report.WithEnrichment(conf.Report),
	)

	return New(conf, prober, sink), nil
}
