package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"houseprice/internal/domain"
	"houseprice/internal/services/form"
)

// predict: one prediction from flag values.
func predictCmd() *cobra.Command {
	var asJSON bool
	raw := make(map[domain.FieldKey]*string, len(domain.Fields))

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a house price from the eight features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[domain.FieldKey]string, len(raw))
			for k, v := range raw {
				values[k] = *v
			}
			in, err := form.ParseInput(values)
			if err != nil {
				return err
			}

			r := appCtx.Renderer(cmd.OutOrStdout())
			var opts []form.Option
			if !asJSON {
				opts = append(opts, form.OnBusy(r.Busy))
			}
			svc, err := appCtx.Form(opts...)
			if err != nil {
				return err
			}
			res, err := svc.Submit(cmd.Context(), in)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(res)
			}
			r.Result(res)
			return nil
		},
	}
	for _, f := range domain.Fields {
		raw[f.Key] = cmd.Flags().String(f.Flag, "", f.Label+" ("+f.Key.String()+")")
		_ = cmd.MarkFlagRequired(f.Flag)
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
