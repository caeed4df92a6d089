// Package seed imports meal catalogs from YAML files.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mealmax/mealmax/internal/kitchen"
)

// Entry is one meal in a seed file.
type Entry struct {
	// Name uniquely identifies the meal.
	Name string `yaml:"name"`

	// Cuisine is the cuisine label (e.g. "Italian").
	Cuisine string `yaml:"cuisine"`

	// Price is the cost of the meal. Must be positive.
	Price float64 `yaml:"price"`

	// Difficulty is the preparation difficulty: LOW, MED or HIGH.
	Difficulty string `yaml:"difficulty"`
}

// File is the top-level seed file shape.
type File struct {
	Meals []Entry `yaml:"meals"`
}

// Summary reports what Apply did.
type Summary struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Load parses a seed file from disk.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}

	if len(f.Meals) == 0 {
		return File{}, fmt.Errorf("seed file %s contains no meals", path)
	}

	return f, nil
}

// Apply creates every entry in the store. Entries whose name is already
// taken are skipped and counted; any other failure aborts the import.
func Apply(ctx context.Context, store *kitchen.Store, entries []Entry) (Summary, error) {
	var sum Summary
	for _, e := range entries {
		_, err := store.CreateMeal(ctx, e.Name, e.Cuisine, e.Price, e.Difficulty)
		switch {
		case err == nil:
			sum.Created++
		case kitchen.IsConflict(err):
			sum.Skipped++
		default:
			return sum, fmt.Errorf("seed meal %q: %w", e.Name, err)
		}
	}
	return sum, nil
}
