package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirasaad/bankdesk/infra/initializer"
	"github.com/amirasaad/bankdesk/internal/console"
	"github.com/amirasaad/bankdesk/pkg/app"
	"github.com/amirasaad/bankdesk/pkg/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	envFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "bankdesk",
		Short:        "bankdesk: clients, accounts and movements from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			deps, err := initializer.InitializeDependencies(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			application, err := app.New(deps, cfg)
			if err != nil {
				return fmt.Errorf("failed to build the application: %w", err)
			}

			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			opts := []console.Option{
				console.WithLogger(deps.Logger),
				console.WithColor(useColor(cfg.Console.Color, out)),
			}
			if f, ok := in.(*os.File); ok {
				if t := console.NewTerminal(f, out); t != nil {
					opts = append(opts, console.WithTerminal(t))
				}
			}
			return console.New(application.BankService, in, out, opts...).Run()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file",
		config.GetEnv("BANKDESK_ENV_FILE", ".env"), "environment file to load (searched upwards)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log at debug level")

	cmd.AddCommand(productsCmd(flags))
	return cmd
}

func (f *globalFlags) loadConfig() (*config.App, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load application configuration: %w", err)
	}
	if f.debug {
		cfg.Log.Level = int(slog.LevelDebug)
	}
	return cfg, nil
}

// useColor resolves a CONSOLE_COLOR mode. In auto mode colour is used only on
// a terminal and never when NO_COLOR is set.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && console.IsTerminal(f) && !config.IsEnvSet("NO_COLOR")
}
