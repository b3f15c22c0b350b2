// Package satchel is the Composition Root for the satchel library.
//
// It connects the core domain (keyed container, item variants, decode
// dispatch) with the persistence adapter (single-file envelope archive)
// using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Satchel is a pocket database for small, typed collections. It groups
// heterogeneous serializable items under enumerated keys and persists the
// whole container to one archive file, reloading it by mapping each
// persisted tag back to a key and each key to its item decoder.
//
// Features:
//
//   - **Closed dispatch**: the key enumeration is the single source of
//     truth for which item variant each tag decodes to, checked at startup.
//   - **Checked narrowing**: querying a bucket as the wrong type is a loud
//     error, never silent garbage.
//   - **Atomic persistence**: archives are replaced via temp file + rename;
//     an interrupted write cannot corrupt a previously valid file.
//   - **Graceful degradation**: unknown tags and corrupt blobs are dropped
//     on reload and surfaced in a Report instead of failing the read.
//   - **Pluggable envelope format**: JSON, YAML, or MessagePack selected by
//     file extension.
//
// Usage:
//
//	// Open (or start) an archive
//	svc, _, err := satchel.Open(ctx, "vault.msgpack")
//
//	// Add items and persist
//	err = svc.Add(ctx, satchel.Note{Text: "remember the milk"}, satchel.Notes)
//	err = svc.Save(ctx)
//
//	// Typed retrieval
//	notes, err := satchel.Items[satchel.Note](svc, satchel.Notes)
package satchel
