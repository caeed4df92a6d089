package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mealmax/mealmax/internal/battle"
	"github.com/mealmax/mealmax/internal/kitchen"
)

// NewBattleCommand creates the battle command group.
func NewBattleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Fight meals against each other",
	}

	cmd.AddCommand(newFightCommand(rootOpts))
	cmd.AddCommand(newScoreCommand(rootOpts))

	return cmd
}

func newFightCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fight <meal> <meal>",
		Short: "Resolve a battle between two meals",
		Long: `Prep two meals and resolve a battle between them.

Each meal may be given by id or by name. The score difference decides the
odds: the bigger the gap, the likelier the stronger meal wins, with the
draw coming from the configured randomness source. Both meals get their
battle recorded; the winner also gets a win.

Example:
  mealmax battle fight "Spaghetti Carbonara" "Pulled Pork Sandwich"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFight(rootOpts, cmd, args[0], args[1])
		},
	}
}

func runFight(opts *RootOptions, cmd *cobra.Command, arg1, arg2 string) error {
	f := newFormatter(opts, cmd)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
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

	for _, arg := range []string{arg1, arg2} {
		meal, err := lookupMeal(cmd.Context(), store, arg)
		if err != nil {
			return emitDomainError(f, err)
		}
		if err := model.PrepCombatant(meal); err != nil {
			return emitDomainError(f, err)
		}
	}

	winner, err := model.Battle(cmd.Context())
	if err != nil {
		return emitDomainError(f, err)
	}

	return f.Emit(map[string]string{"winner": winner}, fmt.Sprintf("The winner is: %s", winner))
}

func newScoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <meal>",
		Short: "Show a meal's battle score",
		Long: `Compute the battle score of a meal by id or name.

The score is price x cuisine length minus a difficulty penalty
(HIGH 1, MED 2, LOW 3).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(rootOpts, cmd, args[0])
		},
	}
}

func runScore(opts *RootOptions, cmd *cobra.Command, arg string) error {
	f := newFormatter(opts, cmd)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	meal, err := lookupMeal(cmd.Context(), store, arg)
	if err != nil {
		return emitDomainError(f, err)
	}

	score, err := battle.Score(meal)
	if err != nil {
		return emitDomainError(f, err)
	}

	data := map[string]any{"meal": meal.Name, "score": score}
	return f.Emit(data, fmt.Sprintf("%s scores %.3f", meal.Name, score))
}

// lookupMeal resolves an argument as a meal id when it parses as an
// integer, otherwise as a meal name.
func lookupMeal(ctx context.Context, store *kitchen.Store, arg string) (kitchen.Meal, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return store.GetMealByID(ctx, id)
	}
	return store.GetMealByName(ctx, arg)
}
