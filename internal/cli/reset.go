package cli

import (
	"github.com/spf13/cobra"
)

// ResetOptions holds flags for the reset command.
type ResetOptions struct {
	*RootOptions
	Yes bool
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the entire catalog",
		Long: `Drop and recreate the catalog tables.

Every meal and battle report is destroyed, all previously issued ids become
invalid, and previously used names become available again. Requires --yes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm the wipe")

	return cmd
}

func runReset(opts *ResetOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	if !opts.Yes {
		return WrapExitError(ExitCommandError, "reset destroys the whole catalog; re-run with --yes to confirm", nil)
	}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Reset(cmd.Context()); err != nil {
		return emitDomainError(f, err)
	}

	return f.Emit(map[string]string{"status": "reset"}, "Catalog reset.")
}
