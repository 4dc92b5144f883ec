package main

import (
	"fmt"
	"os"

	"github.com/zigap/skrinja/internal/forest"
	"github.com/zigap/skrinja/internal/tree"
)

// loadTracker reads the local forest file. A missing file yields an empty
// forest.
func loadTracker() (*tree.Tracker, error) {
	return forest.Load(*forestFile)
}

// saveTracker persists the local forest file.
func saveTracker(t *tree.Tracker) error {
	return forest.Save(*forestFile, t)
}

// withForest loads the forest, runs fn, and saves on success. The shape of
// every mutating local command.
func withForest(fn func(*tree.Tracker) error) error {
	t, err := loadTracker()
	if err != nil {
		return err
	}
	if err := fn(t); err != nil {
		return err
	}
	return saveTracker(t)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func printBox(t *tree.Tracker, b *tree.Box) {
	fmt.Printf("%s  %s", b.ID, b.Name)
	if b.Description != "" {
		fmt.Printf(" — %s", b.Description)
	}
	fmt.Printf("  (%d items)\n", t.TotalItems(b))
}

func printItem(it *tree.Item) {
	fmt.Printf("%s  %s", it.ID, it.Name)
	if it.Description != "" {
		fmt.Printf(" — %s", it.Description)
	}
	fmt.Printf("\n    bought %g @ %.2f, sold %g for %.2f total (avg %.2f, profit %.2f)\n",
		it.BoughtAmount, it.BoughtPrice, it.SoldAmount, it.SoldPrice,
		it.AverageSoldPrice(), it.ProfitLoss())
}
