package cli

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/mealmax/mealmax/internal/kitchen"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderLeaderboard(t *testing.T) {
	entries := []kitchen.LeaderboardEntry{
		{ID: 1, Name: "Spaghetti Carbonara", Cuisine: "Italian", Price: 12.5, Difficulty: kitchen.DifficultyMed, Battles: 3, Wins: 2, WinPct: 66.7},
		{ID: 2, Name: "Pulled Pork Sandwich", Cuisine: "American", Price: 8, Difficulty: kitchen.DifficultyLow, Battles: 3, Wins: 1, WinPct: 33.3},
		{ID: 3, Name: "Sushi Platter", Cuisine: "Japanese", Price: 18, Difficulty: kitchen.DifficultyHigh, Battles: 2, Wins: 0, WinPct: 0},
	}

	newGoldie(t).Assert(t, "leaderboard", []byte(renderLeaderboard(entries)))
}

func TestRenderLeaderboard_Empty(t *testing.T) {
	assert.Equal(t, "No battles fought yet.", renderLeaderboard(nil))
}

func TestRenderHistory(t *testing.T) {
	reports := []kitchen.BattleReport{
		{
			Token:       "0195f7a2-0000-7000-8000-000000000002",
			WinnerID:    2,
			LoserID:     1,
			WinnerScore: 61,
			LoserScore:  85.5,
			Delta:       0.245,
			Draw:        0.3,
			FoughtAt:    time.Date(2025, 3, 1, 12, 5, 0, 0, time.UTC),
		},
		{
			Token:       "0195f7a2-0000-7000-8000-000000000001",
			WinnerID:    1,
			LoserID:     2,
			WinnerScore: 85.5,
			LoserScore:  61,
			Delta:       0.245,
			Draw:        0.1,
			FoughtAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	newGoldie(t).Assert(t, "history", []byte(renderHistory(reports)))
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Equal(t, "No battles recorded.", renderHistory(nil))
}
