package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/dpcl/internal/presentation/graph"
	"github.com/aretw0/dpcl/pkg/dsl"
	"github.com/aretw0/dpcl/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	b := dsl.New()
	b.Task("alice").Makes("alice.out")
	b.Task("bob").Needs("src/bob.in", "alice.out").Makes("bob.out")
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		absent   []string
	}{
		{
			name: "Node Shapes",
			contains: []string{
				"graph TD\n",
				`task_0[["alice"]]`,
				`task_1[["bob"]]`,
				`art_2(("src/bob.in"))`,
				`art_0[/"alice.out"/]`,
				`art_1[/"bob.out"/]`,
			},
		},
		{
			name: "Edges",
			contains: []string{
				"task_0 --> art_0",
				"art_0 --> task_1",
				"art_2 --> task_1",
				"task_1 --> art_1",
			},
			absent: []string{"classDef"},
		},
		{
			name:    "Overlay",
			overlay: &graph.GraphOverlay{FocusTask: "bob"},
			contains: []string{
				"classDef current",
				"class task_1 current;",
				"class art_0 visited;",
				"class art_1 visited;",
			},
			absent: []string{"class task_0 current;"},
		},
	}

	p := buildPipeline(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(p, tt.overlay)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_Empty(t *testing.T) {
	got := graph.GenerateMermaid(pipeline.New(), nil)
	assert.Equal(t, "graph TD\n", got)
}

func TestGenerateMermaid_Deterministic(t *testing.T) {
	p := buildPipeline(t)
	first := graph.GenerateMermaid(p, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, graph.GenerateMermaid(p, nil))
	}
	assert.Equal(t, 4, strings.Count(first, "-->"))
}

func TestGenerateMermaid_DistinctIDs(t *testing.T) {
	b := dsl.New()
	b.Task("a").Makes("out.o")
	b.Task("b").Needs("out_o", "lib (v2)/x#1+%.h", "naïve[0].c").Makes(`say "hi"`)
	p, err := b.Build()
	require.NoError(t, err)

	got := graph.GenerateMermaid(p, &graph.GraphOverlay{FocusTask: "a"})

	// artifacts sorted: `lib (v2)/x#1+%.h`, `naïve[0].c`, `out.o`, `out_o`, `say "hi"`
	assert.Contains(t, got, `art_0(("lib (v2)/x#1+%.h"))`)
	assert.Contains(t, got, `art_1(("naïve[0].c"))`)
	assert.Contains(t, got, `art_2[/"out.o"/]`)
	assert.Contains(t, got, `art_3(("out_o"))`)
	assert.Contains(t, got, `art_4[/"say #quot;hi#quot;"/]`)

	assert.Contains(t, got, "task_0 --> art_2")
	assert.Contains(t, got, "art_3 --> task_1")
	assert.NotContains(t, got, "art_2 --> task_1")
	assert.Equal(t, 1, strings.Count(got, "art_2["))
	assert.Contains(t, got, "class task_0 current;")
}

func TestGenerateMermaid_UnknownFocus(t *testing.T) {
	got := graph.GenerateMermaid(buildPipeline(t), &graph.GraphOverlay{FocusTask: "ghost"})
	assert.NotContains(t, got, "classDef")
}
