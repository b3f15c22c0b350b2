package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Archiver defines the contract for persisting a whole container to a
// single archive and reloading it. Adhering to this interface keeps the
// core independent of the on-disk format (file, object store, ...).
type Archiver interface {
	// Write persists the entire container atomically. Any per-item encode
	// failure aborts the whole write; a previously valid archive must
	// survive a failed or interrupted write.
	Write(ctx context.Context, c *Container) error

	// Load reads the archive and reconstructs a brand-new container. The
	// report counts silently dropped keys and items. A missing archive
	// reports ErrNotFound, unparseable bytes report ErrEnvelope.
	Load(ctx context.Context) (*Container, Report, error)
}

// Watchable is implemented by archivers that can observe external changes
// to their backing store.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Change, error)
}

// Service handles the business logic around a container and its archive:
// validated adds, whole-container save, and reload.
type Service struct {
	container *Container
	archiver  Archiver
	report    Report // from the last reload
}

// NewService creates a service with an empty container.
func NewService(archiver Archiver) *Service {
	return &Service{container: NewContainer(), archiver: archiver}
}

// Add validates the item and appends it under key.
func (s *Service) Add(ctx context.Context, item Item, key Key) error {
	if item == nil {
		return ErrNilItem
	}
	if _, ok := ParseKey(key.String()); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key.String())
	}
	if v, ok := item.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid %s: %w", item.Kind(), err)
		}
	}
	s.container.Add(item, key)
	return nil
}

// Items returns the items stored under key.
func (s *Service) Items(key Key) []Item {
	return s.container.Items(key)
}

// Container exposes the underlying container, e.g. for typed narrowing.
func (s *Service) Container() *Container {
	return s.container
}

// OnChange registers the container change callback. The callback survives
// reloads.
func (s *Service) OnChange(fn func(Change)) {
	s.container.OnChange(fn)
}

// Save persists the whole container through the archiver.
func (s *Service) Save(ctx context.Context) error {
	return s.archiver.Write(ctx, s.container)
}

// Reload replaces the container with a fresh one built from the archive.
// There is no incremental load; unsaved items are discarded.
func (s *Service) Reload(ctx context.Context) (Report, error) {
	fresh, report, err := s.archiver.Load(ctx)
	if err != nil {
		return Report{}, err
	}
	fresh.onChange = s.container.onChange
	s.container = fresh
	s.report = report
	s.container.notify(Change{Type: ChangeReload, Timestamp: time.Now().Unix()})
	return report, nil
}

// LastReport returns the report from the most recent reload.
func (s *Service) LastReport() Report {
	return s.report
}

// Watch observes external changes to the archive if the archiver supports
// it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Change, error) {
	w, ok := s.archiver.(Watchable)
	if !ok {
		return nil, errors.New("archiver does not support watching")
	}
	return w.Watch(ctx, pattern)
}
