package commands

import (
	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scan settings that can be set on the command line, layered on top of
// the config file
type scanFlags struct {
	configFile    string
	iface         string
	wait          int
	vlanRange     string
	outputDir     string
	subnetMask    bool
	possibleHosts bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&f.configFile, "config", "", "path to yaml config file (default ~/.config/vlanscan/vlanscan.yml)")
	flags.StringVarP(&f.iface, "interface", "i", config.DefaultInterface, "interface name (f.e. -i eth1)")
	flags.IntVarP(&f.wait, "wait", "w", config.DefaultWait, "wait time per VLAN in seconds")
	flags.StringVarP(&f.vlanRange, "range", "r", "1-4094", "vlan id range (f.e. -r 200-210)")
	flags.StringVarP(&f.outputDir, "output-dir", "o", config.DefaultOutputDir, "directory to write reports to")
	flags.BoolVar(&f.subnetMask, "subnet-mask", false, "include subnet mask in report entries")
	flags.BoolVar(&f.possibleHosts, "possible-hosts", false, "include number of possible hosts in report entries")
}

// resolve returns the effective scan config: defaults, then the config
// file, then any flag explicitly set on the command line
func (f *scanFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	confPath := f.configPath()

	conf, err := config.Load(confPath)

	if err != nil {
		return config.Config{}, err
	}

	overrides := config.Config{}
	flags := cmd.Flags()

	if flags.Changed("interface") {
		overrides.Interface = f.iface
	}

	if flags.Changed("wait") {
		overrides.Wait = f.wait
	}

	if flags.Changed("range") {
		start, end, err := config.ParseRange(f.vlanRange)

		if err != nil {
			return config.Config{}, err
		}

		overrides.RangeStart = start
		overrides.RangeEnd = end
	}

	result, err := config.Override(*conf, overrides)

	if err != nil {
		return config.Config{}, err
	}

	// explicit zero values are dropped by the merge
	if flags.Changed("wait") {
		result.Wait = f.wait
	}

	if flags.Changed("output-dir") {
		result.OutputDir = f.outputDir
	}

	if flags.Changed("subnet-mask") {
		result.Report.SubnetMask = f.subnetMask
	}

	if flags.Changed("possible-hosts") {
		result.Report.PossibleHosts = f.possibleHosts
	}

	return result, result.Validate()
}

func (f *scanFlags) configPath() string {
	if f.configFile != "" {
		return f.configFile
	}

	confPath, _ := viper.Get("config-file").(string)

	return confPath
}
