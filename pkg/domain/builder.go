package domain

// TaskBuilder assembles a Task. The zero value is ready to use.
type TaskBuilder struct {
	task    Task
	hasName bool
}

// NewTask starts a builder for a task with the given name.
// It is shorthand for (&TaskBuilder{}).Name(name).
func NewTask(name string) *TaskBuilder {
	return (&TaskBuilder{}).Name(name)
}

// Name sets the task name. The name is required; an empty name counts as unset.
func (b *TaskBuilder) Name(name string) *TaskBuilder {
	b.task.name = name
	b.hasName = name != ""
	return b
}

// Command sets the opaque command payload.
func (b *TaskBuilder) Command(command string) *TaskBuilder {
	b.task.command = command
	b.task.hasCommand = true
	return b
}

// DependsOn appends dependency artifact paths.
func (b *TaskBuilder) DependsOn(paths ...string) *TaskBuilder {
	b.task.dependencies = append(b.task.dependencies, paths...)
	return b
}

// Produces appends output artifact paths.
func (b *TaskBuilder) Produces(paths ...string) *TaskBuilder {
	b.task.outputs = append(b.task.outputs, paths...)
	return b
}

// Build returns the assembled Task, or ErrMissingTaskName if no name was set.
// The builder can be reused; the returned Task does not share storage with it.
func (b *TaskBuilder) Build() (Task, error) {
	if !b.hasName {
		return Task{}, ErrMissingTaskName
	}
	t := b.task
	t.dependencies = cloneOrNil(b.task.dependencies)
	t.outputs = cloneOrNil(b.task.outputs)
	return t, nil
}

func cloneOrNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
