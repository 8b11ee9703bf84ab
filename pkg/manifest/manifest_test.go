package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/dpcl/pkg/domain"
	"github.com/aretw0/dpcl/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlManifest = `
name: demo
tasks:
  - name: alice
    command: make alice.out
    outputs: [alice.out]
  - name: bob
    dependencies:
      - bob.in
      - alice.out
    outputs: [bob.out]
`

const jsonManifest = `{
  "name": "demo",
  "tasks": [
    {"name": "alice", "command": "make alice.out", "outputs": ["alice.out"]},
    {"name": "bob", "dependencies": ["bob.in", "alice.out"], "outputs": ["bob.out"]}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "YAML", file: "dpcl.yaml", content: yamlManifest},
		{name: "YML", file: "dpcl.yml", content: yamlManifest},
		{name: "JSON", file: "dpcl.json", content: jsonManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "demo", m.Name)
			require.Len(t, m.Tasks, 2)

			p, err := m.Pipeline()
			require.NoError(t, err)
			assert.Equal(t, 2, p.TaskCount())
			assert.Equal(t, 3, p.ArtifactCount())

			alice, ok := p.GetTask("alice")
			require.True(t, ok)
			cmd, ok := alice.Command()
			assert.True(t, ok)
			assert.Equal(t, "make alice.out", cmd)

			bob, ok := p.GetTask("bob")
			require.True(t, ok)
			_, ok = bob.Command()
			assert.False(t, ok)
			assert.Equal(t, []string{"bob.in", "alice.out"}, bob.Dependencies())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format manifest.Format
	}{
		{name: "Malformed YAML", data: "tasks: [", format: manifest.FormatYAML},
		{name: "Malformed JSON", data: `{"tasks": `, format: manifest.FormatJSON},
		{name: "Unknown Key", data: "tasks:\n  - name: a\n    inputs: [x]\n", format: manifest.FormatYAML},
		{name: "Wrong Type", data: "tasks: hello\n", format: manifest.FormatYAML},
		{name: "Unknown Format", data: "tasks: []", format: manifest.Format("toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestPipeline_ReportsAllProblems(t *testing.T) {
	m, err := manifest.Parse([]byte(`
tasks:
  - name: ""
  - dependencies: [x]
`), manifest.FormatYAML)
	require.NoError(t, err)

	_, err = m.Pipeline()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingTaskName))
	assert.Contains(t, err.Error(), "tasks[0]")
	assert.Contains(t, err.Error(), "tasks[1]")
}

func TestPipeline_DuplicateTask(t *testing.T) {
	m, err := manifest.Parse([]byte(`
tasks:
  - name: bob
  - name: bob
    outputs: [late.out]
`), manifest.FormatYAML)
	require.NoError(t, err)

	p, err := m.Pipeline()
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateTask))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, manifest.FormatJSON, manifest.FormatFromPath("a/b.JSON"))
	assert.Equal(t, manifest.FormatYAML, manifest.FormatFromPath("dpcl.yaml"))
	assert.Equal(t, manifest.FormatYAML, manifest.FormatFromPath("Pipelinefile"))
}
