package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/session"
	"github.com/nutrimind/nutrimind/pkg/storage"
)

func main() {
	// Usage: go run *.go -db /tmp/day.sqlite -food "Greek yogurt" -kcal 150

	dbFlag := flag.String("db", "", "SQLite file to keep the day in (empty keeps it in memory)")
	foodFlag := flag.String("food", "", "Food to log as a snack")
	kcalFlag := flag.String("kcal", "", "Calories of the food (guessed when empty)")
	flag.Parse()

	ctx := context.Background()
	var store storage.Store = storage.NewMemory()
	if *dbFlag != "" {
		db, err := storage.Open(*dbFlag)
		if err != nil {
			fmt.Println(err)
			return
		}
		store = db
	}
	defer store.Close()

	// Any Store works: sqlite, redis or memory
	s := session.New(ctx, store)
	if *foodFlag != "" {
		s.QuickAdd(*foodFlag, *kcalFlag, nutrition.Snacks)
	}

	snap := s.Snapshot()
	fmt.Println(snap.Headline)
	fmt.Printf("Net %s kcal, grade %s, %s kcal left\n", nutrition.FormatKcal(snap.Net), snap.Grade, nutrition.FormatKcal(snap.Remaining))
	fmt.Println(snap.Tip.Text)
	for _, r := range snap.Recommendations {
		fmt.Println("-", r.Name, nutrition.FormatKcal(r.Kcal), "kcal")
	}
}
