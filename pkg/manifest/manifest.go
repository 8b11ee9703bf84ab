// Package manifest decodes task definitions from YAML or JSON files and feeds them into a pipeline.
//
// A manifest looks like:
//
//	name: hello
//	tasks:
//	  - name: compile
//	    command: cc -c main.c
//	    dependencies: [main.c]
//	    outputs: [main.o]
//
// The manifest only describes tasks. The graph itself is never written back.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/dpcl/pkg/domain"
	"github.com/aretw0/dpcl/pkg/pipeline"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder for a manifest document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format by file extension. Anything but .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// TaskSpec is the on-disk shape of one task.
type TaskSpec struct {
	Name         string   `mapstructure:"name" yaml:"name" json:"name"`
	Command      *string  `mapstructure:"command" yaml:"command,omitempty" json:"command,omitempty"`
	Dependencies []string `mapstructure:"dependencies" yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Outputs      []string `mapstructure:"outputs" yaml:"outputs,omitempty" json:"outputs,omitempty"`
}

// Manifest is a decoded task definition file.
type Manifest struct {
	Name  string     `mapstructure:"name" yaml:"name,omitempty" json:"name,omitempty"`
	Tasks []TaskSpec `mapstructure:"tasks" yaml:"tasks" json:"tasks"`
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Manifest, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json manifest: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}

	var m Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &m,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

// BuildTasks turns every spec into a domain.Task, keeping file order.
// All invalid specs are reported together.
func (m *Manifest) BuildTasks() ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(m.Tasks))
	var errs []error
	for i, spec := range m.Tasks {
		b := domain.NewTask(spec.Name).
			DependsOn(spec.Dependencies...).
			Produces(spec.Outputs...)
		if spec.Command != nil {
			b.Command(*spec.Command)
		}
		task, err := b.Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("tasks[%d]: %w", i, err))
			continue
		}
		tasks = append(tasks, task)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return tasks, nil
}

// Pipeline builds the tasks and adds them to a new pipeline in file order.
// Duplicate names are collected rather than stopping at the first one.
func (m *Manifest) Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	tasks, err := m.BuildTasks()
	if err != nil {
		return nil, err
	}

	p := pipeline.New(opts...)
	var errs []error
	for _, task := range tasks {
		if err := p.AddTask(task); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return p, nil
}
