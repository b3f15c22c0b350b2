package typed_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/typed"
)

func TestItemsNarrowing(t *testing.T) {
	c := core.NewContainer()
	date := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c.Add(core.Event{Date: date, Title: "one"}, core.HomeEvents)
	c.Add(core.Event{Date: date.Add(time.Hour), Title: "two"}, core.HomeEvents)
	c.Add(core.Note{Text: "memo"}, core.Notes)

	events, err := typed.Items[core.Event](c, core.HomeEvents)
	if err != nil {
		t.Fatalf("narrowing failed: %v", err)
	}
	if len(events) != 2 || events[0].Title != "one" || events[1].Title != "two" {
		t.Errorf("unexpected events: %v", events)
	}

	notes, err := typed.Items[core.Note](c, core.Notes)
	if err != nil {
		t.Fatalf("narrowing failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "memo" {
		t.Errorf("unexpected notes: %v", notes)
	}

	// An empty (or absent) bucket narrows to an empty slice of any type.
	empty, err := typed.Items[core.Event](c, core.WorkEvents)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty bucket: got %v, %v", empty, err)
	}
}

func TestItemsKindMismatch(t *testing.T) {
	c := core.NewContainer()
	c.Add(core.Note{Text: "memo"}, core.Notes)
	c.Add(core.Event{Date: time.Now(), Title: "t"}, core.HomeEvents)

	if _, err := typed.Items[core.Event](c, core.Notes); !errors.Is(err, core.ErrKindMismatch) {
		t.Errorf("notes as events: got %v", err)
	}
	if _, err := typed.Items[core.Note](c, core.HomeEvents); !errors.Is(err, core.ErrKindMismatch) {
		t.Errorf("events as notes: got %v", err)
	}
}
