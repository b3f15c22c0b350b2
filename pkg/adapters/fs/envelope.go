package fs

import (
	"fmt"
	"sort"

	"github.com/aretw0/satchel/pkg/core"
)

// Envelope is the flat on-disk shape of a container: persisted key tag to
// ordered opaque item blobs. It knows nothing about item variants; mapping
// tags back to decoders happens in DecodeContainer.
type Envelope map[string][][]byte

// EncodeContainer flattens a container into an envelope. A single item
// failing to encode aborts the whole operation, so a partial archive is
// never produced.
func EncodeContainer(c *core.Container) (Envelope, error) {
	env := make(Envelope)
	for key, items := range c.Buckets() {
		blobs := make([][]byte, 0, len(items))
		for i, item := range items {
			data, err := item.Encode()
			if err != nil {
				return nil, fmt.Errorf("encode %s[%d]: %w", key, i, err)
			}
			blobs = append(blobs, data)
		}
		env[key.String()] = blobs
	}
	return env, nil
}

// DecodeContainer reconstructs a container from an envelope.
//
// Tags that no enumerated key matches are dropped whole; that is the
// forward-compatibility policy that lets an old reader open an archive
// written by a newer format. Blobs under known keys that fail to decode
// are dropped individually. Neither is an error; the report counts both.
func DecodeContainer(env Envelope) (*core.Container, core.Report) {
	var report core.Report
	buckets := make(map[core.Key][]core.Item, len(env))

	for tag, blobs := range env {
		key, ok := core.ParseKey(tag)
		if !ok {
			report.UnknownKeys = append(report.UnknownKeys, tag)
			continue
		}

		items := make([]core.Item, 0, len(blobs))
		for _, blob := range blobs {
			item, ok := core.Decode(key.Kind(), blob)
			if !ok {
				report.DroppedItems++
				continue
			}
			items = append(items, item)
		}
		buckets[key] = items
	}

	// Map iteration order is random; keep the report deterministic.
	sort.Strings(report.UnknownKeys)

	return core.NewContainerWith(buckets), report
}
