package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mealmax/mealmax/internal/kitchen"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "Show recent battles",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum battles to show")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
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

	reports, err := store.RecentBattles(cmd.Context(), opts.Limit)
	if err != nil {
		return emitDomainError(f, err)
	}

	return f.Emit(reports, renderHistory(reports))
}

func renderHistory(reports []kitchen.BattleReport) string {
	if len(reports) == 0 {
		return "No battles recorded."
	}

	var b strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&b, "%s  meal %d beat meal %d  (%.3f vs %.3f, delta %.3f, draw %.3f)\n",
			r.FoughtAt.Format(time.RFC3339), r.WinnerID, r.LoserID,
			r.WinnerScore, r.LoserScore, r.Delta, r.Draw)
	}
	return strings.TrimRight(b.String(), "\n")
}
