package core

import "fmt"

// Key identifies one logical bucket in a Container. Its string value is
// the stable tag used in persisted envelopes, so renaming a constant's
// value is a breaking format change.
type Key string

const (
	HomeEvents Key = "homeEvents"
	WorkEvents Key = "workEvents"
	Notes      Key = "notes"
)

// Keys returns every enumerated key in declaration order.
func Keys() []Key {
	return []Key{HomeEvents, WorkEvents, Notes}
}

// ParseKey maps a persisted tag back to a Key. Unknown tags report false;
// callers decide whether that is an error (the decode path drops them,
// input paths reject them).
func ParseKey(s string) (Key, bool) {
	switch Key(s) {
	case HomeEvents, WorkEvents, Notes:
		return Key(s), true
	}
	return "", false
}

// String returns the persisted tag form.
func (k Key) String() string { return string(k) }

// Kind returns the item variant stored under this key. This switch is the
// single source of truth for decode dispatch during reload: HomeEvents and
// WorkEvents hold events, Notes holds notes.
func (k Key) Kind() Kind {
	switch k {
	case HomeEvents, WorkEvents:
		return KindEvent
	case Notes:
		return KindNote
	}
	return ""
}

func init() {
	// A key whose kind has no decoder would make reload silently drop the
	// whole bucket. Fail fast at startup instead.
	for _, k := range Keys() {
		if _, ok := decoders[k.Kind()]; !ok {
			panic(fmt.Sprintf("satchel: no decoder registered for key %q (kind %q)", k, k.Kind()))
		}
	}
}
