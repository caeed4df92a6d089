package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mealmax/mealmax/internal/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Import meals from a YAML file",
		Long: `Import meals from a YAML catalog file.

Entries whose name already exists are skipped, so re-running a seed file is
safe. The file shape:

  meals:
    - name: Spaghetti Carbonara
      cuisine: Italian
      price: 12.50
      difficulty: MED`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, cmd, args[0])
		},
	}
}

func runSeed(opts *RootOptions, cmd *cobra.Command, path string) error {
	f := newFormatter(opts, cmd)

	file, err := seed.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load seed file", err)
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

	sum, err := seed.Apply(cmd.Context(), store, file.Meals)
	if err != nil {
		return emitDomainError(f, err)
	}

	text := fmt.Sprintf("Seeded %d meals (%d skipped as duplicates)", sum.Created, sum.Skipped)
	return f.Emit(sum, text)
}
