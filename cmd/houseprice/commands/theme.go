package commands

import (
	"github.com/spf13/cobra"

	"houseprice/internal/domain"
	"houseprice/internal/render"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the light/dark preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := appCtx.Theme.Current()
			if err != nil {
				return err
			}
			printTheme(cmd, t)
			return nil
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark and remember the choice",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := appCtx.Theme.Toggle()
				if err != nil {
					return err
				}
				printTheme(cmd, t)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Set and remember the theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{domain.ThemeLight.String(), domain.ThemeDark.String()},
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := domain.ParseTheme(args[0])
				if err != nil {
					return err
				}
				if err := appCtx.Theme.Set(t); err != nil {
					return err
				}
				printTheme(cmd, t)
				return nil
			},
		},
	)
	return cmd
}

// printTheme renders with the new theme, not the one loaded at startup.
func printTheme(cmd *cobra.Command, t domain.Theme) {
	render.New(cmd.OutOrStdout(), t, !appCtx.Config.NoColor).Themef("Theme: %s", t)
}
