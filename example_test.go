package satchel_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/satchel"
)

// Example_basic demonstrates filling a container, persisting it, and
// reloading it from the archive.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "satchel-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "vault.json")
	ctx := context.Background()

	// Open tolerates a missing archive and starts empty.
	svc, _, err := satchel.Open(ctx, path)
	if err != nil {
		log.Fatal(err)
	}

	date := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	if err := svc.Add(ctx, satchel.Event{Date: date, Title: "dentist", Description: "annual checkup"}, satchel.HomeEvents); err != nil {
		log.Fatal(err)
	}
	if err := svc.Add(ctx, satchel.Note{Text: "remember the milk"}, satchel.Notes); err != nil {
		log.Fatal(err)
	}
	if err := svc.Save(ctx); err != nil {
		log.Fatal(err)
	}

	// Reload from disk and query with checked narrowing.
	reloaded, _, err := satchel.Open(ctx, path, satchel.WithMustExist(true))
	if err != nil {
		log.Fatal(err)
	}

	events, err := satchel.Items[satchel.Event](reloaded, satchel.HomeEvents)
	if err != nil {
		log.Fatal(err)
	}
	notes, err := satchel.Items[satchel.Note](reloaded, satchel.Notes)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s / %s\n", events[0].Title, notes[0].Text)
	// Output:
	// dentist / remember the milk
}
