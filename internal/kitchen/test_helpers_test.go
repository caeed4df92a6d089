package kitchen

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a fresh store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustCreateMeal creates a meal or fails the test.
func mustCreateMeal(t *testing.T, s *Store, name, cuisine string, price float64, difficulty string) Meal {
	t.Helper()
	meal, err := s.CreateMeal(context.Background(), name, cuisine, price, difficulty)
	if err != nil {
		t.Fatalf("CreateMeal(%q) failed: %v", name, err)
	}
	return meal
}

// counters reads a meal's battle counters straight from the table.
func counters(t *testing.T, s *Store, id int64) (battles, wins int64) {
	t.Helper()
	err := s.db.QueryRow("SELECT battles, wins FROM meals WHERE id = ?", id).Scan(&battles, &wins)
	if err != nil {
		t.Fatalf("query counters for %d: %v", id, err)
	}
	return battles, wins
}
