package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/dpcl/pkg/pipeline"
)

// Builder manages the pipeline construction.
type Builder struct {
	tasks map[string]*TaskBuilder
	order []string
}

// New creates a new pipeline builder.
func New() *Builder {
	return &Builder{
		tasks: make(map[string]*TaskBuilder),
	}
}

// Task declares a task in the pipeline.
// If the task already exists, it returns the existing builder.
func (b *Builder) Task(name string) *TaskBuilder {
	if tb, ok := b.tasks[name]; ok {
		return tb
	}
	tb := newTaskBuilder(name)
	b.tasks[name] = tb
	b.order = append(b.order, name)
	return tb
}

// Build compiles the declared tasks into a Pipeline.
// Every invalid task is reported; no pipeline is returned if any task fails.
func (b *Builder) Build(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	p := pipeline.New(opts...)

	var errs []error
	for _, name := range b.order {
		task, err := b.tasks[name].Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", name, err))
			continue
		}
		if err := p.AddTask(task); err != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build pipeline: %w", errors.Join(errs...))
	}
	return p, nil
}
