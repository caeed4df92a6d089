package kitchen

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Difficulty is the preparation difficulty of a meal.
// The set is closed: LOW, MED and HIGH are the only valid values.
type Difficulty string

const (
	DifficultyLow  Difficulty = "LOW"
	DifficultyMed  Difficulty = "MED"
	DifficultyHigh Difficulty = "HIGH"
)

// ParseDifficulty validates a difficulty label.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return Difficulty(s), nil
	}
	return "", NewInvalidArgument(fmt.Sprintf("invalid difficulty level: %s, must be 'LOW', 'MED', or 'HIGH'", s))
}

// Outcome is the result recorded for one combatant after a battle.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Meal is a catalog record as returned by reads.
// Battle counters are not part of the read payload; they surface only
// through the leaderboard.
type Meal struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Cuisine    string     `json:"cuisine"`
	Price      float64    `json:"price"`
	Difficulty Difficulty `json:"difficulty"`
}

// LeaderboardEntry is one ranked row: a non-deleted meal with at least one
// battle, annotated with its win percentage.
type LeaderboardEntry struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Cuisine    string     `json:"cuisine"`
	Price      float64    `json:"price"`
	Difficulty Difficulty `json:"difficulty"`
	Battles    int64      `json:"battles"`
	Wins       int64      `json:"wins"`
	WinPct     float64    `json:"win_pct"`
}

// BattleReport is one resolved battle as persisted in the history table.
type BattleReport struct {
	Token       string    `json:"token"`
	WinnerID    int64     `json:"winner_id"`
	LoserID     int64     `json:"loser_id"`
	WinnerScore float64   `json:"winner_score"`
	LoserScore  float64   `json:"loser_score"`
	Delta       float64   `json:"delta"`
	Draw        float64   `json:"draw"`
	FoughtAt    time.Time `json:"fought_at"`
}

// normalizeName puts a meal name into Unicode NFC so that uniqueness checks
// and lookups agree on a single byte representation.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}

// validatePrice rejects non-positive, NaN and infinite prices.
func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return NewInvalidArgument(fmt.Sprintf("invalid price: %v, price must be a positive number", price))
	}
	return nil
}

// roundPct rounds a percentage to one decimal place.
func roundPct(pct float64) float64 {
	return math.Round(pct*10) / 10
}
