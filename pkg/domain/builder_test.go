package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/dpcl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskBuilder_Build(t *testing.T) {
	task, err := domain.NewTask("bob").
		DependsOn("bob.in").
		Produces("bob.out").
		Command("cc -o bob.out bob.in").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "bob", task.Name())
	assert.Equal(t, []string{"bob.in"}, task.Dependencies())
	assert.Equal(t, []string{"bob.out"}, task.Outputs())

	cmd, ok := task.Command()
	assert.True(t, ok)
	assert.Equal(t, "cc -o bob.out bob.in", cmd)
}

func TestTaskBuilder_EmptyTask(t *testing.T) {
	task, err := domain.NewTask("bob").Build()
	require.NoError(t, err)

	assert.Equal(t, "bob", task.Name())
	assert.Empty(t, task.Dependencies())
	assert.Empty(t, task.Outputs())

	_, ok := task.Command()
	assert.False(t, ok, "command should be absent when never set")
}

func TestTaskBuilder_MissingName(t *testing.T) {
	tests := []struct {
		name    string
		builder *domain.TaskBuilder
	}{
		{name: "Zero Value", builder: &domain.TaskBuilder{}},
		{name: "Empty Name", builder: domain.NewTask("")},
		{name: "Fields Without Name", builder: (&domain.TaskBuilder{}).DependsOn("a").Produces("b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := tt.builder.Build()
			assert.True(t, errors.Is(err, domain.ErrMissingTaskName))
			assert.True(t, task.Equal(domain.Task{}), "failed build must not yield a partial task")
		})
	}
}

func TestTaskBuilder_OrderPreserved(t *testing.T) {
	task, err := domain.NewTask("link").
		DependsOn("c.o", "a.o").
		DependsOn("b.o").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"c.o", "a.o", "b.o"}, task.Dependencies())
}

func TestTask_Immutable(t *testing.T) {
	b := domain.NewTask("bob").DependsOn("bob.in")
	task, err := b.Build()
	require.NoError(t, err)

	deps := task.Dependencies()
	deps[0] = "tampered"
	assert.Equal(t, []string{"bob.in"}, task.Dependencies(), "accessor must return a copy")

	b.DependsOn("late.in")
	assert.Equal(t, []string{"bob.in"}, task.Dependencies(), "builder reuse must not leak into built task")
}

func TestDuplicateTaskError(t *testing.T) {
	var err error = &domain.DuplicateTaskError{Name: "bob"}

	assert.True(t, errors.Is(err, domain.ErrDuplicateTask))
	assert.Contains(t, err.Error(), `"bob"`)

	var dup *domain.DuplicateTaskError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "bob", dup.Name)
}
