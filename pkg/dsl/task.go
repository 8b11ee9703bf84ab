package dsl

import "github.com/aretw0/dpcl/pkg/domain"

// TaskBuilder provides a fluent API for configuring a task.
type TaskBuilder struct {
	inner *domain.TaskBuilder
}

func newTaskBuilder(name string) *TaskBuilder {
	return &TaskBuilder{inner: domain.NewTask(name)}
}

// Needs declares artifact paths the task depends on.
func (t *TaskBuilder) Needs(paths ...string) *TaskBuilder {
	t.inner.DependsOn(paths...)
	return t
}

// Makes declares artifact paths the task produces.
func (t *TaskBuilder) Makes(paths ...string) *TaskBuilder {
	t.inner.Produces(paths...)
	return t
}

// Run sets the command payload. It is stored verbatim and never interpreted.
func (t *TaskBuilder) Run(command string) *TaskBuilder {
	t.inner.Command(command)
	return t
}

// Build returns the underlying domain.Task.
// This is primarily used by the Builder, but exposed for advanced usage.
func (t *TaskBuilder) Build() (domain.Task, error) {
	return t.inner.Build()
}
