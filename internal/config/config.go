package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/robgonnella/vlanscan/internal/exception"
	"gopkg.in/yaml.v3"
)

// VLAN ID limits from 802.1Q, 0 and 4095 are reserved
const (
	MinVLANID = 1
	MaxVLANID = 4094
)

// Defaults used when neither the config file nor flags set a value
const (
	DefaultInterface = "eth0"
	DefaultWait      = 3
	DefaultOutputDir = "."
)

var ifaceNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_@:-][a-zA-Z0-9_.@:-]*$`)

// Report represents optional enrichment of report entries
type Report struct {
	SubnetMask    bool `yaml:"subnetMask"`
	PossibleHosts bool `yaml:"possibleHosts"`
}

// Config represents the settings for a single scan
type Config struct {
	Interface  string `yaml:"interface"`
	Wait       int    `yaml:"wait"`
	RangeStart int    `yaml:"rangeStart"`
	RangeEnd   int    `yaml:"rangeEnd"`
	OutputDir  string `yaml:"outputDir"`
	Report     Report `yaml:"report"`
}

// Default returns the default scan configuration covering every legal VLAN ID
func Default() Config {
	return Config{
		Interface:  DefaultInterface,
		Wait:       DefaultWait,
		RangeStart: MinVLANID,
		RangeEnd:   MaxVLANID,
		OutputDir:  DefaultOutputDir,
	}
}

// New returns unmarshaled data structure of user provided config with
// defaults filled in for any missing values
func New(confPath string) (*Config, error) {
	var conf Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", exception.ErrInvalidConfig, confPath, err)
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Load is like New but returns the default config when confPath does not exist
func Load(confPath string) (*Config, error) {
	conf, err := New(confPath)

	if errors.Is(err, os.ErrNotExist) {
		def := Default()
		return &def, nil
	}

	return conf, err
}

// Write stores conf as yaml at confPath
func Write(conf Config, confPath string) error {
	file, err := os.Create(confPath)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}

// Override returns a copy of conf with every non-zero field of overrides
// applied on top
func Override(conf Config, overrides Config) (Config, error) {
	if err := mergo.Merge(&conf, overrides, mergo.WithOverride); err != nil {
		return Config{}, err
	}

	return conf, nil
}

// WaitDuration returns the per-VLAN DHCP wait
func (c Config) WaitDuration() time.Duration {
	return time.Duration(c.Wait) * time.Second
}

// Validate returns exception.ErrInvalidConfig describing the first
// problem found
func (c Config) Validate() error {
	if !ifaceNameRegexp.MatchString(c.Interface) {
		return fmt.Errorf("%w: invalid interface name %q", exception.ErrInvalidConfig, c.Interface)
	}

	if c.Wait < 1 {
		return fmt.Errorf("%w: wait must be a positive number of seconds, got %d", exception.ErrInvalidConfig, c.Wait)
	}

	if err := validateVLANID(c.RangeStart); err != nil {
		return err
	}

	if err := validateVLANID(c.RangeEnd); err != nil {
		return err
	}

	if c.RangeStart > c.RangeEnd {
		return fmt.Errorf(
			"%w: range start %d is greater than range end %d",
			exception.ErrInvalidConfig,
			c.RangeStart,
			c.RangeEnd,
		)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory cannot be empty", exception.ErrInvalidConfig)
	}

	return nil
}

// ParseRange parses a VLAN ID range in the form "<min>-<max>", e.g. "200-210"
func ParseRange(r string) (int, int, error) {
	lo, hi, found := strings.Cut(r, "-")

	if !found {
		return 0, 0, fmt.Errorf("%w: range must be in the form <min>-<max>, got %q", exception.ErrInvalidConfig, r)
	}

	start, err := strconv.Atoi(strings.TrimSpace(lo))

	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range start %q", exception.ErrInvalidConfig, lo)
	}

	end, err := strconv.Atoi(strings.TrimSpace(hi))

	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range end %q", exception.ErrInvalidConfig, hi)
	}

	if err := validateVLANID(start); err != nil {
		return 0, 0, err
	}

	if err := validateVLANID(end); err != nil {
		return 0, 0, err
	}

	if start > end {
		return 0, 0, fmt.Errorf("%w: range start %d is greater than range end %d", exception.ErrInvalidConfig, start, end)
	}

	return start, end, nil
}

func validateVLANID(id int) error {
	if id < MinVLANID || id > MaxVLANID {
		return fmt.Errorf(
			"%w: VLAN ID %d out of range %d-%d",
			exception.ErrInvalidConfig,
			id,
			MinVLANID,
			MaxVLANID,
		)
	}

	return nil
}
