package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dpcl/pkg/domain"
)

// Graph is the read-only view of a pipeline needed to draw it.
type Graph interface {
	Tasks() []domain.Task
	Artifacts() []domain.Artifact
	SourceArtifacts() []domain.Artifact
	TaskDependencies(name string) []domain.Artifact
	TaskOutputs(name string) []domain.Artifact
}

// GraphOverlay highlights part of the graph.
type GraphOverlay struct {
	// FocusTask is drawn as current; its dependencies and outputs as visited.
	FocusTask string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a pipeline.
// It applies semantic styling:
// - Task: [[Subroutine]]
// - Source artifact (nothing produces it): ((Circle))
// - Artifact: [/Parallelogram/]
// Dependency edges point from artifact to task, output edges from task to artifact.
// It also applies overlay styles if provided.
func GenerateMermaid(g Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	sources := make(map[string]bool)
	for _, a := range g.SourceArtifacts() {
		sources[a.Path] = true
	}

	artifacts := g.Artifacts()
	tasks := g.Tasks()
	ids := newNodeIDs(tasks, artifacts)

	for _, a := range artifacts {
		opener, closer := "[/", "/]"
		if sources[a.Path] {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids.artifacts[a.Path], opener, escapeLabel(a.Path), closer))
	}

	for _, t := range tasks {
		sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", ids.tasks[t.Name()], escapeLabel(t.Name())))
	}

	for _, t := range tasks {
		safeTask := ids.tasks[t.Name()]
		for _, dep := range g.TaskDependencies(t.Name()) {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", ids.artifacts[dep.Path], safeTask))
		}
		for _, out := range g.TaskOutputs(t.Name()) {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeTask, ids.artifacts[out.Path]))
		}
	}

	if focus, ok := ids.tasks[focusOf(overlay)]; ok {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		neighbours := append(g.TaskDependencies(overlay.FocusTask), g.TaskOutputs(overlay.FocusTask)...)
		styled := make(map[string]bool)
		for _, a := range neighbours {
			safeID := ids.artifacts[a.Path]
			if !styled[safeID] {
				styled[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		sb.WriteString(fmt.Sprintf("    class %s current;\n", focus))
	}

	return sb.String()
}

func focusOf(overlay *GraphOverlay) string {
	if overlay == nil {
		return ""
	}
	return overlay.FocusTask
}

// nodeIDs maps names and paths to mermaid ids taken from their sorted position,
// so distinct names never share an id and no label text leaks into the syntax.
type nodeIDs struct {
	tasks     map[string]string
	artifacts map[string]string
}

func newNodeIDs(tasks []domain.Task, artifacts []domain.Artifact) nodeIDs {
	ids := nodeIDs{
		tasks:     make(map[string]string, len(tasks)),
		artifacts: make(map[string]string, len(artifacts)),
	}
	for i, t := range tasks {
		ids.tasks[t.Name()] = fmt.Sprintf("task_%d", i)
	}
	for i, a := range artifacts {
		ids.artifacts[a.Path] = fmt.Sprintf("art_%d", i)
	}
	return ids
}

var labelReplacer = strings.NewReplacer(
	"\"", "#quot;",
	"\n", " ",
	"\r", " ",
)

func escapeLabel(s string) string {
	return labelReplacer.Replace(s)
}
