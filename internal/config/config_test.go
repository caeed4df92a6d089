package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mealmax.db", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "https://www.random.org/decimal-fractions/", cfg.RandomURL)
	assert.Equal(t, 5*time.Second, cfg.RandomTimeout)
	assert.False(t, cfg.LocalRandom)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MEALMAX_DB", "/tmp/arena.db")
	t.Setenv("MEALMAX_LISTEN", "127.0.0.1:9999")
	t.Setenv("MEALMAX_RANDOM_TIMEOUT", "250ms")
	t.Setenv("MEALMAX_LOCAL_RANDOM", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/arena.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.RandomTimeout)
	assert.True(t, cfg.LocalRandom)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("MEALMAX_RANDOM_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
