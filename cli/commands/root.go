package commands

import (
	"os"

	"github.com/robgonnella/vlanscan/internal/command"
	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/robgonnella/vlanscan/internal/core"
	"github.com/robgonnella/vlanscan/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	CreateCore func(conf config.Config) (*core.Core, error)
	// Executor runs host commands outside of a scan, defaults to the shell
	Executor command.Executor
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool

	flags := &scanFlags{}

	executor := props.Executor

	if executor == nil {
		executor = command.NewShellExecutor()
	}

	cmd := &cobra.Command{
		Use:   "vlanscan",
		Short: "Probes a range of VLAN IDs for DHCP assigned addresses",
		Long: `Creates a tagged sub-interface for each VLAN ID in the range, brings it up,
waits for DHCP and records every VLAN that received a non link-local IPv4
address in a timestamped json report.`,
		Example: "  vlanscan -i eth1 -r 200-210 -w 5",
		Args:    cobra.NoArgs,
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
				return nil
			}

			logFile, ok := viper.Get("log-file").(string)

			if ok && logFile != "" {
				file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

				if err != nil {
					return err
				}

				logger.GlobalSetLogFile(file)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := flags.resolve(cmd)

			if err != nil {
				return err
			}

			appCore, err := props.CreateCore(conf)

			if err != nil {
				return err
			}

			_, err = appCore.Run(cmd.Context())

			return err
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	flags.register(cmd)

	cmd.AddCommand(version())
	cmd.AddCommand(info(executor))
	cmd.AddCommand(show())
	cmd.AddCommand(clean(flags))
	cmd.AddCommand(initConfig(flags))

	return cmd
}
