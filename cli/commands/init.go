package commands

import (
	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/robgonnella/vlanscan/internal/logger"
	"github.com/spf13/cobra"
)

// creates and returns the "init" command which stores the effective
// settings so later scans can run without flags
func initConfig(flags *scanFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Writes the current settings to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			conf, err := flags.resolve(cmd)

			if err != nil {
				return err
			}

			confPath := flags.configPath()

			if err := config.Write(conf, confPath); err != nil {
				return err
			}

			log.Info().Str("file", confPath).Msg("wrote config file")

			return nil
		},
	}

	return cmd
}
