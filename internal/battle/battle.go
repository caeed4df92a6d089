package battle

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/mealmax/mealmax/internal/kitchen"
	"github.com/mealmax/mealmax/internal/random"
)

// maxCombatants is the pool capacity. Battles are strictly pairwise.
const maxCombatants = 2

// Catalog is the slice of the persistence layer the battle engine needs.
// Implemented by *kitchen.Store.
type Catalog interface {
	RecordResult(ctx context.Context, id int64, outcome kitchen.Outcome) error
}

// Reporter persists resolved battles for history. Implemented by
// *kitchen.Store. Reporting is optional and sits outside the required
// persistence boundary: a failed report never fails a battle.
type Reporter interface {
	RecordBattle(ctx context.Context, report kitchen.BattleReport) error
}

// Model conducts battles between two prepped meals.
//
// Thread-safety: a Model is owned by one battle session and performs no
// internal locking. Callers sharing a Model across goroutines must
// serialize PrepCombatant/Battle/ClearCombatants themselves.
type Model struct {
	catalog    Catalog
	source     random.Source
	reporter   Reporter
	tokens     TokenGenerator
	log        *slog.Logger
	combatants []kitchen.Meal
}

// Option configures a Model.
type Option func(*Model)

// WithReporter enables battle history recording.
func WithReporter(r Reporter) Option {
	return func(m *Model) { m.reporter = r }
}

// WithTokenGenerator overrides the battle token generator.
// Tests use NewFixedTokens for deterministic tokens.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(m *Model) { m.tokens = g }
}

// WithLogger overrides the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// New creates a Model with an empty combatant pool.
// The catalog and randomness source are required collaborators; both are
// injected so the engine never reaches for ambient state.
func New(catalog Catalog, source random.Source, opts ...Option) *Model {
	m := &Model{
		catalog: catalog,
		source:  source,
		tokens:  UUIDv7Generator{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PrepCombatant adds a meal to the pool for an upcoming battle.
// Fails with ErrCombatantsFull if two combatants are already prepped.
func (m *Model) PrepCombatant(meal kitchen.Meal) error {
	if len(m.combatants) >= maxCombatants {
		m.log.Error("combatant pool is full", "meal", meal.Name)
		return ErrCombatantsFull
	}

	m.combatants = append(m.combatants, meal)
	m.log.Info("combatant prepped", "meal", meal.Name, "pool_size", len(m.combatants))
	return nil
}

// ClearCombatants empties the pool unconditionally.
func (m *Model) ClearCombatants() {
	m.log.Info("clearing combatants", "pool_size", len(m.combatants))
	m.combatants = m.combatants[:0]
}

// Combatants returns a copy of the current pool, order preserved.
func (m *Model) Combatants() []kitchen.Meal {
	out := make([]kitchen.Meal, len(m.combatants))
	copy(out, m.combatants)
	return out
}

// Score computes a combatant's battle score:
//
//	score = price x (character length of cuisine) - penalty
//
// where the penalty is 1 for HIGH, 2 for MED and 3 for LOW difficulty.
// Character length counts runes, so multi-byte cuisines score by what the
// user sees. Fails with ErrUnknownDifficulty outside the three values.
func Score(meal kitchen.Meal) (float64, error) {
	var penalty float64
	switch meal.Difficulty {
	case kitchen.DifficultyHigh:
		penalty = 1
	case kitchen.DifficultyMed:
		penalty = 2
	case kitchen.DifficultyLow:
		penalty = 3
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, meal.Difficulty)
	}

	return meal.Price*float64(len([]rune(meal.Cuisine))) - penalty, nil
}

// Battle resolves a contest between the two prepped combatants and returns
// the winner's name.
//
// The score difference, normalized by 100, is the probability threshold for
// the first combatant to win: with r drawn uniformly from [0,1), combatant
// one wins iff delta > r. A tie at delta == r goes to combatant two; the
// boundary is inclusive-low by longstanding behavior.
//
// The winner's "win" is recorded before the loser's "loss". If the random
// draw or either record fails, the error propagates and the pool is left
// untouched - in particular the loser is not removed. On success the loser
// leaves the pool and the winner stays.
func (m *Model) Battle(ctx context.Context) (string, error) {
	m.log.Info("two meals enter, one meal leaves")

	if len(m.combatants) < maxCombatants {
		m.log.Error("not enough combatants to start a battle", "pool_size", len(m.combatants))
		return "", ErrNotEnoughCombatants
	}

	token := m.tokens.Generate()
	log := m.log.With("battle", token)

	c1 := m.combatants[0]
	c2 := m.combatants[1]
	log.Info("battle started", "combatant_1", c1.Name, "combatant_2", c2.Name)

	score1, err := Score(c1)
	if err != nil {
		return "", fmt.Errorf("score %s: %w", c1.Name, err)
	}
	score2, err := Score(c2)
	if err != nil {
		return "", fmt.Errorf("score %s: %w", c2.Name, err)
	}
	log.Info("scores computed", "score_1", score1, "score_2", score2)

	delta := math.Abs(score1-score2) / 100

	draw, err := m.source.Float(ctx)
	if err != nil {
		log.Error("randomness source failed", "error", err)
		return "", fmt.Errorf("draw random value: %w", err)
	}
	log.Info("random value drawn", "delta", delta, "draw", draw)

	winner, loser := c2, c1
	if delta > draw {
		winner, loser = c1, c2
	}
	log.Info("winner determined", "winner", winner.Name)

	if err := m.catalog.RecordResult(ctx, winner.ID, kitchen.OutcomeWin); err != nil {
		return "", fmt.Errorf("record win for %s: %w", winner.Name, err)
	}
	if err := m.catalog.RecordResult(ctx, loser.ID, kitchen.OutcomeLoss); err != nil {
		return "", fmt.Errorf("record loss for %s: %w", loser.Name, err)
	}

	m.combatants = append(m.combatants[:0], winner)

	if m.reporter != nil {
		winnerScore, loserScore := score1, score2
		if winner.ID == c2.ID {
			winnerScore, loserScore = score2, score1
		}
		report := kitchen.BattleReport{
			Token:       token,
			WinnerID:    winner.ID,
			LoserID:     loser.ID,
			WinnerScore: winnerScore,
			LoserScore:  loserScore,
			Delta:       delta,
			Draw:        draw,
			FoughtAt:    time.Now().UTC(),
		}
		// The battle is already resolved; history is best-effort.
		if err := m.reporter.RecordBattle(ctx, report); err != nil {
			log.Error("failed to record battle report", "error", err)
		}
	}

	return winner.Name, nil
}
