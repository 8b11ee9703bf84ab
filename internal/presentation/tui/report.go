package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/dpcl/pkg/domain"
)

// ReportGraph is the read-only view of a pipeline needed for the inspect report.
type ReportGraph interface {
	TaskCount() int
	ArtifactCount() int
	Tasks() []domain.Task
	SourceArtifacts() []domain.Artifact
	SinkArtifacts() []domain.Artifact
	TaskDependencies(name string) []domain.Artifact
	TaskOutputs(name string) []domain.Artifact
}

// Report builds a markdown summary of a pipeline: counts, every task with its
// adjacency, and the source and sink artifacts.
func Report(title string, g ReportGraph) string {
	var sb strings.Builder

	if title == "" {
		title = "Pipeline"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "**%d** tasks, **%d** artifacts\n\n", g.TaskCount(), g.ArtifactCount())

	if tasks := g.Tasks(); len(tasks) > 0 {
		sb.WriteString("## Tasks\n\n")
		sb.WriteString("| Task | Dependencies | Outputs | Command |\n")
		sb.WriteString("|------|--------------|---------|---------|\n")
		for _, t := range tasks {
			cmd, ok := t.Command()
			if !ok {
				cmd = "-"
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
				cell(t.Name()),
				joinPaths(g.TaskDependencies(t.Name())),
				joinPaths(g.TaskOutputs(t.Name())),
				cell(cmd),
			)
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Sources", g.SourceArtifacts())
	writeList(&sb, "Sinks", g.SinkArtifacts())

	return sb.String()
}

func writeList(sb *strings.Builder, heading string, artifacts []domain.Artifact) {
	if len(artifacts) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", heading)
	for _, a := range artifacts {
		fmt.Fprintf(sb, "- `%s`\n", a.Path)
	}
	sb.WriteString("\n")
}

func joinPaths(artifacts []domain.Artifact) string {
	if len(artifacts) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		parts = append(parts, "`"+cell(a.Path)+"`")
	}
	return strings.Join(parts, ", ")
}

var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// cell makes s safe inside one markdown table cell.
func cell(s string) string {
	return cellReplacer.Replace(s)
}
