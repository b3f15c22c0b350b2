package core

import "fmt"

// ChangeType represents the type of change in a container or its archive.
type ChangeType string

const (
	ChangeAdd    ChangeType = "ADD"
	ChangeModify ChangeType = "MODIFY"
	ChangeReload ChangeType = "RELOAD"
)

// Change represents a mutation observed on a container (ADD, RELOAD) or
// on its backing archive file (MODIFY).
type Change struct {
	Type      ChangeType
	Key       Key // empty for container-wide changes (RELOAD, MODIFY)
	Timestamp int64
}

// String implements fmt.Stringer.
func (c Change) String() string {
	if c.Key == "" {
		return string(c.Type)
	}
	return fmt.Sprintf("%s %s", c.Type, c.Key)
}

// Report summarizes what a reload silently dropped. Partial recovery is
// preferred over total failure: unknown key tags and undecodable blobs are
// discarded without erroring, but the counts are surfaced here so callers
// can warn or refuse.
type Report struct {
	// UnknownKeys lists persisted tags that no enumerated Key matches,
	// sorted. Their whole blob groups were discarded.
	UnknownKeys []string

	// DroppedItems counts blobs under known keys that failed to decode.
	DroppedItems int
}

// Clean reports whether the reload recovered everything.
func (r Report) Clean() bool {
	return len(r.UnknownKeys) == 0 && r.DroppedItems == 0
}
