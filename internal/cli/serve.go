package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mealmax/mealmax/internal/httpapi"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

The server owns one battle session: prep combatants, fight, and read the
leaderboard over HTTP. See the httpapi package for the route table.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides MEALMAX_LISTEN)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.ListenAddr = opts.Addr
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	model, err := newModel(store, cfg)
	if err != nil {
		return err
	}

	server := httpapi.NewServer(store, model, slog.Default())
	if err := server.Run(cfg.ListenAddr); err != nil {
		return WrapExitError(ExitCommandError, "http server", err)
	}
	return nil
}
