package kitchen

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetMealByID returns the meal with the given id.
// Fails with not-found if no row exists and with gone if the row is
// soft-deleted. Battle counters are not part of the payload.
func (s *Store) GetMealByID(ctx context.Context, id int64) (Meal, error) {
	return s.getMeal(ctx,
		"SELECT id, name, cuisine, price, difficulty, deleted FROM meals WHERE id = ?",
		fmt.Sprintf("meal with id %d", id), id)
}

// GetMealByName returns the meal with the given name.
// The name is NFC-normalized before lookup, matching CreateMeal.
func (s *Store) GetMealByName(ctx context.Context, name string) (Meal, error) {
	name = normalizeName(name)
	return s.getMeal(ctx,
		"SELECT id, name, cuisine, price, difficulty, deleted FROM meals WHERE name = ?",
		fmt.Sprintf("meal with name %q", name), name)
}

func (s *Store) getMeal(ctx context.Context, query, subject string, arg any) (Meal, error) {
	var (
		m       Meal
		diff    string
		deleted bool
	)
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&m.ID, &m.Name, &m.Cuisine, &m.Price, &diff, &deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return Meal{}, NewNotFound(subject + " not found")
	}
	if err != nil {
		return Meal{}, wrapUnavailable("get meal", err)
	}
	if deleted {
		return Meal{}, NewGone(subject + " has been deleted")
	}

	m.Difficulty = Difficulty(diff)
	return m, nil
}

// SortKey selects the leaderboard ordering.
type SortKey string

const (
	// SortByWins orders by total win count.
	SortByWins SortKey = "wins"

	// SortByWinPct orders by win percentage.
	SortByWinPct SortKey = "win_pct"
)

// Leaderboard returns every non-deleted meal that has fought at least one
// battle, annotated with win_pct = round(wins/battles*100, 1 decimal) and
// ordered descending by the chosen key. The sort key is validated before any
// query runs; ties keep the storage order.
func (s *Store) Leaderboard(ctx context.Context, sortBy SortKey) ([]LeaderboardEntry, error) {
	query := `
		SELECT id, name, cuisine, price, difficulty, battles, wins,
		       (wins * 1.0 / battles) AS win_pct
		FROM meals
		WHERE deleted = FALSE AND battles > 0
	`

	switch sortBy {
	case SortByWinPct:
		query += " ORDER BY win_pct DESC"
	case SortByWins:
		query += " ORDER BY wins DESC"
	default:
		return nil, NewInvalidArgument(fmt.Sprintf("invalid sort_by parameter: %s", sortBy))
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapUnavailable("query leaderboard", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var (
			e      LeaderboardEntry
			diff   string
			rawPct float64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Cuisine, &e.Price, &diff, &e.Battles, &e.Wins, &rawPct); err != nil {
			return nil, wrapUnavailable("scan leaderboard", err)
		}
		e.Difficulty = Difficulty(diff)
		e.WinPct = roundPct(rawPct * 100)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapUnavailable("iterate leaderboard", err)
	}

	// Return empty slice instead of nil
	if entries == nil {
		entries = []LeaderboardEntry{}
	}

	return entries, nil
}

// RecentBattles returns up to limit battle reports, newest first.
// A non-positive limit defaults to 20.
func (s *Store) RecentBattles(ctx context.Context, limit int) ([]BattleReport, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT token, winner_id, loser_id, winner_score, loser_score, delta, draw, fought_at
		FROM battle_reports
		ORDER BY fought_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, wrapUnavailable("query battles", err)
	}
	defer rows.Close()

	var reports []BattleReport
	for rows.Next() {
		var (
			r        BattleReport
			foughtAt string
		)
		if err := rows.Scan(&r.Token, &r.WinnerID, &r.LoserID, &r.WinnerScore, &r.LoserScore, &r.Delta, &r.Draw, &foughtAt); err != nil {
			return nil, wrapUnavailable("scan battle report", err)
		}
		if r.FoughtAt, err = time.Parse(time.RFC3339Nano, foughtAt); err != nil {
			return nil, wrapUnavailable("parse battle timestamp", err)
		}
		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapUnavailable("iterate battles", err)
	}

	if reports == nil {
		reports = []BattleReport{}
	}

	return reports, nil
}
