package core

import (
	"testing"
	"time"
)

func TestContainerAddAndItems(t *testing.T) {
	c := NewContainer()

	if got := c.Items(Notes); len(got) != 0 {
		t.Fatalf("fresh container not empty: %v", got)
	}

	first := Note{Text: "first"}
	second := Note{Text: "second"}
	c.Add(first, Notes)
	c.Add(second, Notes)
	c.Add(Event{Date: time.Now(), Title: "t"}, HomeEvents)

	notes := c.Items(Notes)
	if len(notes) != 2 {
		t.Fatalf("want 2 notes, got %d", len(notes))
	}
	if notes[0].(Note) != first || notes[1].(Note) != second {
		t.Errorf("insertion order not preserved: %v", notes)
	}

	if c.Len(HomeEvents) != 1 || c.Len(WorkEvents) != 0 {
		t.Errorf("unexpected bucket sizes: home=%d work=%d", c.Len(HomeEvents), c.Len(WorkEvents))
	}
}

func TestContainerChangeCallback(t *testing.T) {
	c := NewContainer()

	var got []Change
	c.OnChange(func(ch Change) { got = append(got, ch) })

	c.Add(Note{Text: "a"}, Notes)
	if len(got) != 1 || got[0].Type != ChangeAdd || got[0].Key != Notes {
		t.Fatalf("unexpected changes: %v", got)
	}

	// Single slot, last write wins.
	var second int
	c.OnChange(func(Change) { second++ })
	c.Add(Note{Text: "b"}, Notes)
	if len(got) != 1 || second != 1 {
		t.Errorf("old callback still firing (got=%d, second=%d)", len(got), second)
	}

	// Clearing the slot must not panic on the next mutation.
	c.OnChange(nil)
	c.Add(Note{Text: "c"}, Notes)
}

func TestContainerItemsReturnsCopy(t *testing.T) {
	c := NewContainerWith(map[Key][]Item{Notes: {Note{Text: "a"}}})

	items := c.Items(Notes)
	items[0] = Note{Text: "mutated"}

	if c.Items(Notes)[0].(Note).Text != "a" {
		t.Error("Items exposed the internal slice")
	}
}

func TestNewContainerWithCopiesInput(t *testing.T) {
	initial := map[Key][]Item{Notes: {Note{Text: "a"}}}
	c := NewContainerWith(initial)

	initial[Notes][0] = Note{Text: "mutated"}

	if c.Items(Notes)[0].(Note).Text != "a" {
		t.Error("constructor kept a reference to the caller's slice")
	}
}
