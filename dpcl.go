package dpcl

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/dpcl/internal/logging"
	"github.com/aretw0/dpcl/pkg/manifest"
	"github.com/aretw0/dpcl/pkg/pipeline"
)

// Project is a pipeline loaded from a manifest file.
type Project struct {
	// Name comes from the manifest, or the file name without extension when the manifest has none.
	Name string
	// Path is the manifest location.
	Path     string
	Pipeline *pipeline.Pipeline
}

// Option defines a functional option for Open.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets a custom structured logger for loading and graph construction.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Open loads the manifest at path and builds its pipeline.
func Open(path string, opts ...Option) (*Project, error) {
	o := &options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	p, err := m.Pipeline(pipeline.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline from %s: %w", path, err)
	}

	name := m.Name
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	o.logger.Info("pipeline loaded",
		"name", name,
		"path", path,
		"tasks", p.TaskCount(),
		"artifacts", p.ArtifactCount(),
	)
	return &Project{Name: name, Path: path, Pipeline: p}, nil
}
