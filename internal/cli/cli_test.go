package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against a throwaway database and returns
// the captured output. Commands run in JSON mode so tests can decode results.
func runCLI(t *testing.T, db string, args ...string) (CLIResponse, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--db", db, "--format", "json"}, args...))

	err := cmd.Execute()

	var resp CLIResponse
	if buf.Len() > 0 {
		json.Unmarshal(buf.Bytes(), &resp) //nolint:errcheck
	}
	return resp, buf.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mealmax.db")
}

func TestCreateAndGet(t *testing.T) {
	db := testDB(t)

	resp, _, err := runCLI(t, db, "create", "Pad Thai", "10.00", "--cuisine", "Thai", "--difficulty", "MED")
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Status)

	meal := resp.Data.(map[string]any)
	assert.Equal(t, "Pad Thai", meal["name"])
	assert.Equal(t, 1.0, meal["id"])

	resp, _, err = runCLI(t, db, "get", "1")
	require.NoError(t, err)
	assert.Equal(t, "Pad Thai", resp.Data.(map[string]any)["name"])

	resp, _, err = runCLI(t, db, "get", "Pad Thai", "--by-name")
	require.NoError(t, err)
	assert.Equal(t, 1.0, resp.Data.(map[string]any)["id"])
}

func TestCreate_BadPriceArg(t *testing.T) {
	_, _, err := runCLI(t, testDB(t), "create", "Pad Thai", "ten", "--cuisine", "Thai", "--difficulty", "MED")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGet_NotFound(t *testing.T) {
	resp, _, err := runCLI(t, testDB(t), "get", "42")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestDelete_ThenGone(t *testing.T) {
	db := testDB(t)

	_, _, err := runCLI(t, db, "create", "Doomed", "5.00", "--cuisine", "Fusion", "--difficulty", "LOW")
	require.NoError(t, err)

	_, _, err = runCLI(t, db, "delete", "1")
	require.NoError(t, err)

	resp, _, err := runCLI(t, db, "get", "1")
	require.Error(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "GONE", resp.Error.Code)

	resp, _, err = runCLI(t, db, "delete", "1")
	require.Error(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "GONE", resp.Error.Code)
}

func TestBattleScore(t *testing.T) {
	db := testDB(t)

	_, _, err := runCLI(t, db, "create", "Spaghetti Carbonara", "12.50", "--cuisine", "Italian", "--difficulty", "MED")
	require.NoError(t, err)

	resp, _, err := runCLI(t, db, "battle", "score", "Spaghetti Carbonara")
	require.NoError(t, err)
	data := resp.Data.(map[string]any)
	assert.Equal(t, 85.5, data["score"])
}

func TestBattleFight(t *testing.T) {
	t.Setenv("MEALMAX_LOCAL_RANDOM", "true")
	db := testDB(t)

	_, _, err := runCLI(t, db, "create", "Spaghetti Carbonara", "12.50", "--cuisine", "Italian", "--difficulty", "MED")
	require.NoError(t, err)
	_, _, err = runCLI(t, db, "create", "Pulled Pork Sandwich", "8.00", "--cuisine", "American", "--difficulty", "LOW")
	require.NoError(t, err)

	resp, _, err := runCLI(t, db, "battle", "fight", "Spaghetti Carbonara", "2")
	require.NoError(t, err)
	winner := resp.Data.(map[string]any)["winner"]
	assert.Contains(t, []any{"Spaghetti Carbonara", "Pulled Pork Sandwich"}, winner)

	// Both combatants carry the battle, exactly one carries the win
	resp, _, err = runCLI(t, db, "leaderboard")
	require.NoError(t, err)
	entries := resp.Data.([]any)
	require.Len(t, entries, 2)
	wins := 0.0
	for _, e := range entries {
		row := e.(map[string]any)
		assert.Equal(t, 1.0, row["battles"])
		wins += row["wins"].(float64)
	}
	assert.Equal(t, 1.0, wins)

	resp, _, err = runCLI(t, db, "history")
	require.NoError(t, err)
	assert.Len(t, resp.Data.([]any), 1)
}

func TestBattleFight_MissingMeal(t *testing.T) {
	resp, _, err := runCLI(t, testDB(t), "battle", "fight", "Ghost", "Phantom")
	require.Error(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestSeedCommand(t *testing.T) {
	db := testDB(t)
	seedPath := filepath.Join(t.TempDir(), "meals.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`meals:
  - name: Spaghetti Carbonara
    cuisine: Italian
    price: 12.50
    difficulty: MED
  - name: Pulled Pork Sandwich
    cuisine: American
    price: 8.00
    difficulty: LOW
`), 0o644))

	resp, _, err := runCLI(t, db, "seed", seedPath)
	require.NoError(t, err)
	data := resp.Data.(map[string]any)
	assert.Equal(t, 2.0, data["created"])
	assert.Equal(t, 0.0, data["skipped"])

	// Seeding is idempotent
	resp, _, err = runCLI(t, db, "seed", seedPath)
	require.NoError(t, err)
	data = resp.Data.(map[string]any)
	assert.Equal(t, 0.0, data["created"])
	assert.Equal(t, 2.0, data["skipped"])
}

func TestReset_RequiresConfirmation(t *testing.T) {
	db := testDB(t)

	_, _, err := runCLI(t, db, "create", "Keeper", "5.00", "--cuisine", "Fusion", "--difficulty", "LOW")
	require.NoError(t, err)

	_, _, err = runCLI(t, db, "reset")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	// Still there
	_, _, err = runCLI(t, db, "get", "1")
	require.NoError(t, err)

	_, _, err = runCLI(t, db, "reset", "--yes")
	require.NoError(t, err)

	resp, _, err := runCLI(t, db, "get", "1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestInvalidFormatFlag(t *testing.T) {
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--format", "xml", "get", "1"})

	assert.Error(t, cmd.Execute())
}

func TestLeaderboard_BadSortFlag(t *testing.T) {
	resp, _, err := runCLI(t, testDB(t), "leaderboard", "--sort", "losses")
	require.Error(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_ARGUMENT", resp.Error.Code)
}
