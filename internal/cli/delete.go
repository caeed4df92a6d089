package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a meal",
		Long: `Soft-delete a meal by id.

The meal is marked deleted, not removed: its name stays reserved and every
further operation against it fails. Deleting twice is an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, cmd, args[0])
		},
	}
}

func runDelete(opts *RootOptions, cmd *cobra.Command, idArg string) error {
	f := newFormatter(opts, cmd)

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("id %q is not an integer", idArg), err)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SoftDelete(cmd.Context(), id); err != nil {
		return emitDomainError(f, err)
	}

	return f.Emit(map[string]int64{"deleted": id}, fmt.Sprintf("Deleted meal %d", id))
}
