package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mealmax/mealmax/internal/kitchen"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	ByName bool
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <id|name>",
		Short: "Look up a meal",
		Long: `Look up a meal by id, or by name with --by-name.

Soft-deleted meals are reported as gone, not as missing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.ByName, "by-name", false, "look up by name instead of id")

	return cmd
}

func runGet(opts *GetOptions, cmd *cobra.Command, arg string) error {
	f := newFormatter(opts.RootOptions, cmd)

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var meal kitchen.Meal
	if opts.ByName {
		meal, err = store.GetMealByName(cmd.Context(), arg)
	} else {
		var id int64
		if id, err = strconv.ParseInt(arg, 10, 64); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("id %q is not an integer (use --by-name for names)", arg), err)
		}
		meal, err = store.GetMealByID(cmd.Context(), id)
	}
	if err != nil {
		return emitDomainError(f, err)
	}

	text := fmt.Sprintf("%d  %s  (%s, %.2f, %s)", meal.ID, meal.Name, meal.Cuisine, meal.Price, meal.Difficulty)
	return f.Emit(meal, text)
}
