package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	Cuisine    string
	Difficulty string
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create <name> <price>",
		Short: "Add a meal to the catalog",
		Long: `Add a meal to the catalog.

Names are unique for the lifetime of the catalog: a soft-deleted meal keeps
its name reserved until the catalog is reset.

Example:
  mealmax create "Spaghetti Carbonara" 12.50 --cuisine Italian --difficulty MED`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts, cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.Cuisine, "cuisine", "", "cuisine label (e.g. Italian)")
	cmd.Flags().StringVar(&opts.Difficulty, "difficulty", "", "preparation difficulty (LOW|MED|HIGH)")
	cmd.MarkFlagRequired("cuisine")
	cmd.MarkFlagRequired("difficulty")

	return cmd
}

func runCreate(opts *CreateOptions, cmd *cobra.Command, name, priceArg string) error {
	f := newFormatter(opts.RootOptions, cmd)

	price, err := strconv.ParseFloat(priceArg, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("price %q is not a number", priceArg), err)
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

	meal, err := store.CreateMeal(cmd.Context(), name, opts.Cuisine, price, opts.Difficulty)
	if err != nil {
		return emitDomainError(f, err)
	}

	return f.Emit(meal, fmt.Sprintf("Created meal %q (id %d)", meal.Name, meal.ID))
}
