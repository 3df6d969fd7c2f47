package commands

import (
	"os"
	"path/filepath"

	"github.com/robgonnella/vlanscan/internal/logger"
	"github.com/robgonnella/vlanscan/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "clean" command
func clean(flags *scanFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes report files from the output directory and the log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			conf, err := flags.resolve(cmd)

			if err != nil {
				return err
			}

			reports, err := filepath.Glob(filepath.Join(conf.OutputDir, report.FileGlob))

			if err != nil {
				return err
			}

			for _, r := range reports {
				if err := os.Remove(r); err != nil {
					return err
				}
				log.Info().Str("file", r).Msg("removed report file")
			}

			logFile, ok := viper.Get("log-file").(string)

			if ok && logFile != "" {
				if err := os.RemoveAll(logFile); err != nil {
					return err
				}
				log.Info().Msg("removed log file")
			}

			return nil
		},
	}

	return cmd
}
