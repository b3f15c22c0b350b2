package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/satchel/pkg/adapters/fs"
	"github.com/aretw0/satchel/pkg/core"
)

// New wires a core.Service over a file-backed archive store at path
// without touching the disk. Use Open to also load an existing archive.
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	archiver := o.archiver
	if archiver == nil {
		if path == "" {
			return nil, fmt.Errorf("archive path is required")
		}

		config := fs.Config{
			Path:     path,
			Logger:   o.logger,
			FileMode: o.fileMode,
		}

		switch {
		case o.serializer != nil:
			s, ok := o.serializer.(fs.Serializer)
			if !ok {
				return nil, fmt.Errorf("serializer %T does not implement fs.Serializer", o.serializer)
			}
			config.Serializer = s
		case o.format != "":
			s, ok := fs.DefaultSerializers()[o.format]
			if !ok {
				return nil, fmt.Errorf("unknown archive format %q", o.format)
			}
			config.Serializer = s
		}

		archiver = fs.NewStore(config)
	}

	return core.NewService(archiver), nil
}

// Open creates a service and loads the archive at path. A missing archive
// is tolerated (the service starts empty) unless WithMustExist was set.
func Open(ctx context.Context, path string, opts ...Option) (*core.Service, core.Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	service, err := New(path, opts...)
	if err != nil {
		return nil, core.Report{}, err
	}

	report, err := service.Reload(ctx)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) && !o.mustExist {
			return service, core.Report{}, nil
		}
		return nil, core.Report{}, err
	}

	return service, report, nil
}
