package kitchen

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// CreateMeal validates and persists a new meal.
//
// Fails with an invalid-argument error if the price is not a positive finite
// number or the difficulty is not LOW, MED or HIGH. Fails with a conflict
// error if the name is already taken - soft-deleted meals keep their name
// reserved, so recreating a deleted meal under the same name is rejected.
//
// A new meal starts with zero battles, zero wins and deleted=false.
func (s *Store) CreateMeal(ctx context.Context, name, cuisine string, price float64, difficulty string) (Meal, error) {
	if err := validatePrice(price); err != nil {
		return Meal{}, err
	}
	diff, err := ParseDifficulty(difficulty)
	if err != nil {
		return Meal{}, err
	}

	name = normalizeName(name)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO meals (name, cuisine, price, difficulty)
		VALUES (?, ?, ?, ?)
	`, name, cuisine, price, string(diff))
	if err != nil {
		if isUniqueViolation(err) {
			return Meal{}, NewConflict(name)
		}
		return Meal{}, wrapUnavailable("create meal", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Meal{}, wrapUnavailable("create meal", err)
	}

	return Meal{
		ID:         id,
		Name:       name,
		Cuisine:    cuisine,
		Price:      price,
		Difficulty: diff,
	}, nil
}

// SoftDelete marks a meal as deleted.
//
// Fails with not-found if the id is unknown and with gone if the meal was
// already deleted - deletion is one-way and a repeated delete is an error,
// never a silent no-op. The deleted check and the update run in one
// transaction.
func (s *Store) SoftDelete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapUnavailable("delete meal", err)
	}
	defer tx.Rollback()

	if err := checkLive(ctx, tx, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "UPDATE meals SET deleted = TRUE WHERE id = ?", id); err != nil {
		return wrapUnavailable("delete meal", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapUnavailable("delete meal", err)
	}
	return nil
}

// RecordResult updates a meal's battle statistics after one resolved battle.
//
// A win increments both the battle and win counters; a loss increments only
// the battle counter. Outcomes other than "win" and "loss" fail with
// invalid-argument. The existence/deleted check and the counter update are
// one transaction, so a concurrent delete cannot land between them.
func (s *Store) RecordResult(ctx context.Context, id int64, outcome Outcome) error {
	var update string
	switch outcome {
	case OutcomeWin:
		update = "UPDATE meals SET battles = battles + 1, wins = wins + 1 WHERE id = ?"
	case OutcomeLoss:
		update = "UPDATE meals SET battles = battles + 1 WHERE id = ?"
	default:
		return NewInvalidArgument(fmt.Sprintf("invalid outcome: %s, expected 'win' or 'loss'", outcome))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapUnavailable("record result", err)
	}
	defer tx.Rollback()

	if err := checkLive(ctx, tx, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, update, id); err != nil {
		return wrapUnavailable("record result", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapUnavailable("record result", err)
	}
	return nil
}

// RecordBattle appends one resolved battle to the history table.
// A zero FoughtAt is stamped with the current time.
func (s *Store) RecordBattle(ctx context.Context, report BattleReport) error {
	foughtAt := report.FoughtAt
	if foughtAt.IsZero() {
		foughtAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO battle_reports
		(token, winner_id, loser_id, winner_score, loser_score, delta, draw, fought_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.Token,
		report.WinnerID,
		report.LoserID,
		report.WinnerScore,
		report.LoserScore,
		report.Delta,
		report.Draw,
		foughtAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return wrapUnavailable("record battle", err)
	}
	return nil
}

// checkLive verifies inside tx that a meal exists and is not soft-deleted.
func checkLive(ctx context.Context, tx *sql.Tx, id int64) error {
	var deleted bool
	err := tx.QueryRowContext(ctx, "SELECT deleted FROM meals WHERE id = ?", id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return NewNotFound(fmt.Sprintf("meal with id %d not found", id))
	}
	if err != nil {
		return wrapUnavailable("check meal", err)
	}
	if deleted {
		return NewGone(fmt.Sprintf("meal with id %d has been deleted", id))
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
