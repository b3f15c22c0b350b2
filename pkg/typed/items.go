// Package typed provides checked narrowing of container buckets to
// concrete item types.
//
// A container stores plain core.Item values; which variant lives under a
// key is a convention of the codec, not of the container's type. Items
// makes that convention safe to rely on: asking for the wrong type is a
// loud core.ErrKindMismatch, never a silently empty or garbage result.
package typed

import (
	"fmt"

	"github.com/aretw0/satchel/pkg/core"
)

// Items narrows the bucket at key to the concrete item type T, preserving
// insertion order. A single element of the wrong type fails the whole
// query with core.ErrKindMismatch, naming the key, the index, and both
// types involved.
func Items[T core.Item](c *core.Container, key core.Key) ([]T, error) {
	raw := c.Items(key)
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		narrowed, ok := item.(T)
		if !ok {
			var want T
			return nil, fmt.Errorf("%w: %s[%d] holds %T, requested %T",
				core.ErrKindMismatch, key, i, item, want)
		}
		out = append(out, narrowed)
	}
	return out, nil
}

// ServiceItems is a convenience wrapper over Items for a core.Service.
func ServiceItems[T core.Item](svc *core.Service, key core.Key) ([]T, error) {
	return Items[T](svc.Container(), key)
}
