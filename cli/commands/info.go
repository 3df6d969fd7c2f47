package commands

import (
	"fmt"

	app_info "github.com/robgonnella/vlanscan/internal/app-info"
	"github.com/robgonnella/vlanscan/internal/command"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func info(executor command.Executor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Run: func(cmd *cobra.Command, args []string) {
			ipInfo, err := executor.Run(cmd.Context(), "ip -V")

			if err != nil {
				ipInfo = "ip command not available: " + err.Error() + "\n"
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s\n\nconfig: %v\nlog: %v\n\n%s",
				app_info.NAME,
				app_info.VERSION,
				viper.Get("config-file"),
				viper.Get("log-file"),
				ipInfo,
			)
		},
	}

	return cmd
}
