package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/netip"
	"os"
	"path/filepath"

	"github.com/andres-erbsen/clock"
	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/robgonnella/vlanscan/internal/discovery"
	"github.com/robgonnella/vlanscan/internal/exception"
	"github.com/robgonnella/vlanscan/internal/logger"
	"github.com/robgonnella/vlanscan/internal/util"
)

// FilePrefix every report file name starts with this prefix
const FilePrefix = "vlan_ips_"

// TimestampLayout time layout used in report file names
const TimestampLayout = "2006-01-02_15-04-05"

// FileGlob matches report files written by JSONFileSink
const FileGlob = FilePrefix + "*.json"

// JSONFileSinkOption sets optional fields on JSONFileSink
type JSONFileSinkOption func(s *JSONFileSink)

// WithClock overrides the clock used to timestamp report files
func WithClock(c clock.Clock) JSONFileSinkOption {
	return func(s *JSONFileSink) {
		s.clock = c
	}
}

// WithEnrichment adds subnet details to each entry as configured
func WithEnrichment(conf config.Report) JSONFileSinkOption {
	return func(s *JSONFileSink) {
		s.enrich = conf
	}
}

// JSONFileSink is an implementation of the Sink interface writing one
// pretty-printed json file per scan
type JSONFileSink struct {
	dir    string
	enrich config.Report
	clock  clock.Clock
	create func(name string) (io.WriteCloser, error)
	log    logger.Logger
}

// NewJSONFileSink returns a new instance of JSONFileSink writing into dir
func NewJSONFileSink(dir string, options ...JSONFileSinkOption) *JSONFileSink {
	s := &JSONFileSink{
		dir:    dir,
		clock:  clock.New(),
		create: createFile,
		log:    logger.New(),
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// Write stores results in a new timestamped file and returns its path.
// Any failure wraps exception.ErrReportWrite.
func (s *JSONFileSink) Write(results []discovery.Result) (string, error) {
	entries := make([]Entry, 0, len(results))

	for _, r := range results {
		entries = append(entries, s.toEntry(r))
	}

	data, err := json.MarshalIndent(entries, "", "  ")

	if err != nil {
		return "", fmt.Errorf("%w: %s", exception.ErrReportWrite, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %s", exception.ErrReportWrite, err)
	}

	reportFile := filepath.Join(s.dir, FileName(s.clock))

	file, err := s.create(reportFile)

	if err != nil {
		return "", fmt.Errorf("%w: %s", exception.ErrReportWrite, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return "", fmt.Errorf("%w: %s", exception.ErrReportWrite, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%w: %s", exception.ErrReportWrite, err)
	}

	s.log.Debug().
		Str("file", reportFile).
		Int("count", len(entries)).
		Msg("wrote report")

	return reportFile, nil
}

func (s *JSONFileSink) toEntry(r discovery.Result) Entry {
	entry := Entry{
		VLANID:    r.VLANID,
		IPAddress: r.IPAddress,
	}

	if r.IPAddress == nil || !(s.enrich.SubnetMask || s.enrich.PossibleHosts) {
		return entry
	}

	prefix, err := netip.ParsePrefix(*r.IPAddress)

	if err != nil {
		s.log.Warn().Err(err).Int("vlan", r.VLANID).Msg("skipping report enrichment")
		return entry
	}

	if s.enrich.SubnetMask {
		entry.SubnetMask = util.SubnetMask(prefix)
	}

	if s.enrich.PossibleHosts {
		hosts := util.PossibleHosts(prefix)
		entry.PossibleHosts = &hosts
	}

	return entry
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// FileName returns the report file name for the current time of c
func FileName(c clock.Clock) string {
	return FilePrefix + c.Now().Format(TimestampLayout) + ".json"
}

// Load decodes a report file written by JSONFileSink
func Load(reportFile string) ([]Entry, error) {
	data, err := os.ReadFile(reportFile)

	if err != nil {
		return nil, err
	}

	entries := []Entry{}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
