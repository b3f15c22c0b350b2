package satchel

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/satchel/internal/platform"
	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/typed"
)

// --- Types ---

// Item is the capability every stored value implements.
type Item = core.Item

// Event and Note are the built-in item variants.
type (
	Event = core.Event
	Note  = core.Note
)

// Key identifies a bucket; Change is the notification fired on mutations;
// Report counts what a reload silently dropped.
type (
	Key    = core.Key
	Change = core.Change
	Report = core.Report
)

// Container is the in-memory keyed store; Service wraps it together with
// its archive.
type (
	Container = core.Container
	Service   = core.Service
)

// The enumerated keys.
const (
	HomeEvents = core.HomeEvents
	WorkEvents = core.WorkEvents
	Notes      = core.Notes
)

// Keys returns every enumerated key.
func Keys() []core.Key {
	return core.Keys()
}

// ParseKey maps a tag string back to a Key.
func ParseKey(s string) (core.Key, bool) {
	return core.ParseKey(s)
}

// --- Configuration ---

// Option defines a functional option for configuring satchel.
type Option = platform.Option

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithArchiver allows injecting a custom storage adapter.
func WithArchiver(archiver core.Archiver) Option {
	return platform.WithArchiver(archiver)
}

// WithSerializer registers a custom envelope serializer (must implement
// fs.Serializer).
func WithSerializer(s any) Option {
	return platform.WithSerializer(s)
}

// WithFormat forces the envelope format by extension (e.g. ".json").
func WithFormat(ext string) Option {
	return platform.WithFormat(ext)
}

// WithFileMode sets the archive file permissions.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithMustExist requires the archive file to already exist at open time.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// --- Factory ---

// New creates a satchel Service over an archive file at path, without
// touching the disk.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Open creates a Service and loads the archive at path. A missing archive
// yields an empty service unless WithMustExist was set.
func Open(ctx context.Context, path string, opts ...Option) (*core.Service, core.Report, error) {
	return platform.Open(ctx, path, opts...)
}

// --- Typed access ---

// Items narrows the bucket at key to a concrete item type, failing with
// core.ErrKindMismatch when the bucket holds something else.
func Items[T core.Item](svc *core.Service, key core.Key) ([]T, error) {
	return typed.Items[T](svc.Container(), key)
}
