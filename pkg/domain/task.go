package domain

import "slices"

// Task is a named unit of work in a pipeline.
//
// A Task is immutable once built: accessors return copies of the path lists, so callers
// cannot reach back into a value already registered with a pipeline.
type Task struct {
	name         string
	command      string
	hasCommand   bool
	dependencies []string
	outputs      []string
}

// Name returns the unique task name.
func (t Task) Name() string {
	return t.name
}

// Command returns the opaque command payload and whether one was set.
func (t Task) Command() (string, bool) {
	return t.command, t.hasCommand
}

// Dependencies returns the dependency artifact paths in declaration order.
func (t Task) Dependencies() []string {
	return slices.Clone(t.dependencies)
}

// Outputs returns the output artifact paths in declaration order.
func (t Task) Outputs() []string {
	return slices.Clone(t.outputs)
}

// Equal reports whether two tasks carry the same name, command and path lists.
func (t Task) Equal(other Task) bool {
	return t.name == other.name &&
		t.hasCommand == other.hasCommand &&
		t.command == other.command &&
		slices.Equal(t.dependencies, other.dependencies) &&
		slices.Equal(t.outputs, other.outputs)
}

// String returns the task name.
func (t Task) String() string {
	return t.name
}
