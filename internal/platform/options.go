package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/satchel/pkg/core"
)

// options holds the internal configuration for the satchel service.
type options struct {
	archiver   core.Archiver
	logger     *slog.Logger
	serializer any // adapter Serializer; validated during wiring
	format     string
	fileMode   os.FileMode
	mustExist  bool
}

// Option defines a functional option for configuring satchel.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithArchiver allows injecting a custom archiver (e.g. mock, object
// store). If provided, the default file-backed store is skipped.
func WithArchiver(archiver core.Archiver) Option {
	return func(o *options) {
		o.archiver = archiver
	}
}

// WithSerializer registers a custom envelope serializer. The value must
// implement the adapter's Serializer interface (e.g. fs.Serializer).
// Using 'any' keeps the public API clean; validation happens during New.
func WithSerializer(s any) Option {
	return func(o *options) {
		o.serializer = s
	}
}

// WithFormat forces the envelope format by extension (e.g. ".json"),
// regardless of the archive path's own extension.
func WithFormat(ext string) Option {
	return func(o *options) {
		o.format = ext
	}
}

// WithFileMode sets the archive file permissions. Defaults to 0644.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithMustExist requires the archive file to already exist at open time.
// Without it, Open tolerates a missing archive and starts empty.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}
