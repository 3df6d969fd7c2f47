package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/robgonnella/vlanscan/internal/report"
	"github.com/spf13/cobra"
)

// prints a previously written report as a table
func show() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <report-file>",
		Short: "Print the VLANs recorded in a report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := report.Load(args[0])

			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "VLAN\tIP ADDRESS\tSUBNET MASK\tPOSSIBLE HOSTS")

			for _, e := range entries {
				ip := "-"

				if e.IPAddress != nil {
					ip = *e.IPAddress
				}

				mask := "-"

				if e.SubnetMask != "" {
					mask = e.SubnetMask
				}

				hosts := "-"

				if e.PossibleHosts != nil {
					hosts = fmt.Sprint(*e.PossibleHosts)
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.VLANID, ip, mask, hosts)
			}

			return w.Flush()
		},
	}

	return cmd
}
