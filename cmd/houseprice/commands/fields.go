package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"houseprice/internal/domain"
)

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the form fields, their JSON keys and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tFLAG\tLABEL")
			for _, f := range domain.Fields {
				fmt.Fprintf(tw, "%s\t--%s\t%s\n", f.Key, f.Flag, f.Label)
			}
			return tw.Flush()
		},
	}
}
