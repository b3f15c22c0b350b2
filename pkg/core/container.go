package core

import "time"

// Container groups items under typed keys, preserving insertion order per
// key. It is a plain in-memory structure with no internal locking; a
// single logical owner is assumed (wrap it externally if shared).
//
// Buckets are homogeneous by convention: the codec decides which variant a
// key holds (see Key.Kind), the container itself does not enforce it.
// Use the typed package to narrow a bucket with a checked assertion.
type Container struct {
	buckets  map[Key][]Item
	onChange func(Change)
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{buckets: make(map[Key][]Item)}
}

// NewContainerWith seeds a container from an initial mapping. This is the
// reload path's constructor; the mapping is copied shallowly (items are
// immutable values).
func NewContainerWith(initial map[Key][]Item) *Container {
	c := NewContainer()
	for k, items := range initial {
		c.buckets[k] = append([]Item(nil), items...)
	}
	return c
}

// OnChange registers the change callback, invoked synchronously after
// every mutation. A single slot, last write wins; pass nil to clear.
func (c *Container) OnChange(fn func(Change)) {
	c.onChange = fn
}

// Add appends item to the bucket at key, creating the bucket if absent,
// then fires the change callback.
func (c *Container) Add(item Item, key Key) {
	c.buckets[key] = append(c.buckets[key], item)
	c.notify(Change{Type: ChangeAdd, Key: key, Timestamp: time.Now().Unix()})
}

// Items returns a copy of the bucket at key, in insertion order.
func (c *Container) Items(key Key) []Item {
	return append([]Item(nil), c.buckets[key]...)
}

// Len returns the number of items stored under key.
func (c *Container) Len(key Key) int {
	return len(c.buckets[key])
}

// Buckets returns a copy of the whole mapping. Used by the encode path.
func (c *Container) Buckets() map[Key][]Item {
	out := make(map[Key][]Item, len(c.buckets))
	for k, items := range c.buckets {
		out[k] = append([]Item(nil), items...)
	}
	return out
}

func (c *Container) notify(ch Change) {
	if c.onChange != nil {
		c.onChange(ch)
	}
}
