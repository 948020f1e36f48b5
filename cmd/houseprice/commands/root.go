package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"houseprice/internal/app"
	"houseprice/internal/logging"
)

var (
	home        string
	apiURL      string
	predictPath string
	logLevel    string
	noColor     bool
	appCtx      *app.Wire
)

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return execute(ctx, newRootCmd())
}

// execute runs root and releases the wire whether or not the command failed.
func execute(ctx context.Context, root *cobra.Command) error {
	defer closeWire()
	return root.ExecuteContext(ctx)
}

func closeWire() {
	if appCtx == nil {
		return
	}
	if err := appCtx.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close log:", err)
	}
	appCtx = nil
}

func newRootCmd() *cobra.Command {
	home, apiURL, predictPath, logLevel, noColor = "", "", "", "", false
	appCtx = nil

	root := &cobra.Command{
		Use:          "houseprice",
		Short:        "House price prediction client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".houseprice")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.Load(home, ".env")
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("api") {
				cfg.APIURL = apiURL
			}
			if flags.Changed("predict-path") {
				cfg.PredictPath = predictPath
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("no-color") {
				cfg.NoColor = noColor
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			cmd.SetContext(logging.WithLogger(cmd.Context(), w.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.houseprice)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "prediction service base URL (default "+app.DefaultAPIURL+")")
	root.PersistentFlags().StringVar(&predictPath, "predict-path", "", `path appended to the base URL (default "/predict"; "" posts to the base URL)`)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(predictCmd(), formCmd(), themeCmd(), fieldsCmd())
	return root
}
