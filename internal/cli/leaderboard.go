package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mealmax/mealmax/internal/kitchen"
)

// LeaderboardOptions holds flags for the leaderboard command.
type LeaderboardOptions struct {
	*RootOptions
	SortBy string
}

// NewLeaderboardCommand creates the leaderboard command.
func NewLeaderboardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LeaderboardOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank meals by battle record",
		Long: `Rank every meal that has fought at least one battle.

Sort by total wins (default) or by win percentage with --sort win_pct.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SortBy, "sort", "wins", "sort key (wins|win_pct)")

	return cmd
}

func runLeaderboard(opts *LeaderboardOptions, cmd *cobra.Command) error {
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

	entries, err := store.Leaderboard(cmd.Context(), kitchen.SortKey(opts.SortBy))
	if err != nil {
		return emitDomainError(f, err)
	}

	return f.Emit(entries, renderLeaderboard(entries))
}

// renderLeaderboard formats leaderboard entries as a fixed-width table.
func renderLeaderboard(entries []kitchen.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "No battles fought yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-24s %-12s %8s %5s %8s %6s %8s\n",
		"RANK", "MEAL", "CUISINE", "PRICE", "DIFF", "BATTLES", "WINS", "WIN%")
	for i, e := range entries {
		fmt.Fprintf(&b, "%-4d %-24s %-12s %8.2f %5s %8d %6d %7.1f%%\n",
			i+1, e.Name, e.Cuisine, e.Price, e.Difficulty, e.Battles, e.Wins, e.WinPct)
	}
	return strings.TrimRight(b.String(), "\n")
}
