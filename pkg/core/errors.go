package core

import "errors"

// Common errors.
var (
	// ErrNotFound indicates that no archive exists at the target path.
	ErrNotFound = errors.New("archive not found")

	// ErrEnvelope indicates that the archive bytes do not parse as an
	// envelope (a mapping from key tags to item blobs).
	ErrEnvelope = errors.New("malformed archive envelope")

	// ErrKindMismatch indicates a bucket was queried as a different item
	// type than it actually holds.
	ErrKindMismatch = errors.New("bucket holds a different item kind")

	// ErrNilItem rejects nil items on Add.
	ErrNilItem = errors.New("item is nil")

	// ErrUnknownKey rejects keys outside the enumeration on input paths.
	// Unknown key tags found inside an archive are not errors; the decode
	// path drops them and counts them in the Report.
	ErrUnknownKey = errors.New("unknown key")
)
