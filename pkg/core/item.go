package core

import (
	"bytes"
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind identifies the concrete variant of an Item.
type Kind string

const (
	KindEvent Kind = "event"
	KindNote  Kind = "note"
)

// Item is the capability shared by every value a Container can hold: it
// knows its own variant and can encode itself to a self-contained blob.
// Decoding lives in the per-kind dispatch table (see Decode) so that the
// set of variants stays closed.
type Item interface {
	Kind() Kind

	// Encode produces a self-describing encoding of the item's fields.
	// It is deterministic and has no side effects.
	Encode() ([]byte, error)
}

// Event is a dated calendar entry. Stored under the HomeEvents and
// WorkEvents keys.
type Event struct {
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

func (e Event) Kind() Kind { return KindEvent }

func (e Event) Encode() ([]byte, error) { return json.Marshal(e) }

// Validate checks business constraints before an event enters a container.
// The codec never validates; a persisted event round-trips as-is.
func (e Event) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&e.Date, validation.Required),
		validation.Field(&e.Description, validation.Length(0, 4096)),
	)
}

// Note is a free-form text entry. Stored under the Notes key.
type Note struct {
	Text string `json:"text"`
}

func (n Note) Kind() Kind { return KindNote }

func (n Note) Encode() ([]byte, error) { return json.Marshal(n) }

// Validate checks business constraints before a note enters a container.
func (n Note) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Text, validation.Required, validation.Length(1, 65536)),
	)
}

// DecodeFunc attempts to reconstruct an Item from its encoded form. It
// reports false on malformed, truncated, or schema-mismatched input
// instead of returning an error; it never panics.
type DecodeFunc func(data []byte) (Item, bool)

// decoders is the closed dispatch table from item kind to decoder. Every
// kind reachable from an enumerated Key must have an entry; key.go checks
// this at startup.
var decoders = map[Kind]DecodeFunc{
	KindEvent: decodeEvent,
	KindNote:  decodeNote,
}

// Decode reconstructs an item of the given kind from data. Unknown kinds
// and malformed payloads report false.
func Decode(kind Kind, data []byte) (Item, bool) {
	fn, ok := decoders[kind]
	if !ok {
		return nil, false
	}
	return fn(data)
}

func decodeEvent(data []byte) (Item, bool) {
	var e Event
	if !decodeStrict(data, &e) {
		return nil, false
	}
	return e, true
}

func decodeNote(data []byte) (Item, bool) {
	var n Note
	if !decodeStrict(data, &n) {
		return nil, false
	}
	return n, true
}

// decodeStrict unmarshals JSON rejecting unknown fields, so a blob encoded
// for one variant does not silently zero-fill another.
func decodeStrict(data []byte, v any) bool {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return false
	}
	// Trailing bytes after the object count as malformed.
	return !dec.More()
}
