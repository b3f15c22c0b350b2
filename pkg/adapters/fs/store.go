// Package fs persists a whole container to a single archive file on the
// local filesystem.
//
// The on-disk format is a serialized envelope: a mapping from key tags to
// lists of opaque item blobs. Writes are atomic (temp file + rename);
// reads distinguish a missing archive from a malformed one and recover
// what they can from partially corrupt envelopes.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/satchel/pkg/core"
)

// Store is the file-backed archiver. It implements core.Archiver and
// core.Watchable.
type Store struct {
	Path string

	serializer Serializer
	config     Config

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
}

// Config holds the configuration for the archive store.
type Config struct {
	Path       string
	Logger     *slog.Logger
	Serializer Serializer  // overrides extension-based selection
	FileMode   os.FileMode // archive file permissions, defaults to 0644
}

// NewStore creates an archive store for the given path. The envelope
// serializer is chosen from the file extension unless overridden;
// unrecognized extensions fall back to MessagePack.
func NewStore(config Config) *Store {
	serializer := config.Serializer
	if serializer == nil {
		ext := strings.ToLower(filepath.Ext(config.Path))
		if s, ok := DefaultSerializers()[ext]; ok {
			serializer = s
		} else {
			serializer = &MsgpackSerializer{}
		}
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.FileMode == 0 {
		config.FileMode = 0o644
	}
	return &Store{
		Path:       config.Path,
		serializer: serializer,
		config:     config,
	}
}

// Write encodes the container and atomically replaces the archive file.
// A failure at any stage leaves a previously existing archive untouched.
func (s *Store) Write(ctx context.Context, c *core.Container) error {
	env, err := EncodeContainer(c)
	if err != nil {
		return err
	}

	data, err := s.serializer.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}

	if err := writeFileAtomic(s.Path, data, s.config.FileMode); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}

	s.config.Logger.Debug("archive written", "path", s.Path, "bytes", len(data))
	return nil
}

// Load reads the archive and reconstructs a container. A missing file
// reports core.ErrNotFound; bytes that do not parse as an envelope report
// core.ErrEnvelope. Unknown keys and undecodable blobs inside a valid
// envelope are dropped and counted, not errors.
func (s *Store) Load(ctx context.Context) (*core.Container, core.Report, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.Report{}, fmt.Errorf("%w: %s", core.ErrNotFound, s.Path)
		}
		return nil, core.Report{}, fmt.Errorf("read %s: %w", s.Path, err)
	}

	env, err := s.serializer.Unmarshal(data)
	if err != nil {
		return nil, core.Report{}, fmt.Errorf("%w: %s: %w", core.ErrEnvelope, s.Path, err)
	}

	container, report := DecodeContainer(env)
	if !report.Clean() {
		s.config.Logger.Warn("archive partially recovered",
			"path", s.Path,
			"unknown_keys", report.UnknownKeys,
			"dropped_items", report.DroppedItems,
		)
	}

	s.recordLoad()
	return container, report, nil
}

// Watch emits a Change whenever the archive file is replaced or rewritten
// by another process. pattern is a doublestar glob matched against the
// archive file name; empty matches everything. The watcher stops when ctx
// is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Change, error) {
	events := make(chan core.Change, 16)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		// Stop synchronously drains in-flight debounced sends before the
		// channel is closed; late sends recover from the closed channel.
		_ = w.Stop(context.Background())
		close(events)
	}()

	return events, nil
}

func (s *Store) recordLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastLoad = &now
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
