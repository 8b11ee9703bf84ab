// Package dto holds the JSON shapes shared by the HTTP and MCP adapters.
package dto

import "github.com/aretw0/dpcl/pkg/domain"

// TaskView is the JSON shape of a task.
type TaskView struct {
	Name         string   `json:"name"`
	Command      *string  `json:"command,omitempty"`
	Dependencies []string `json:"dependencies"`
	Outputs      []string `json:"outputs"`
}

// ArtifactView is the JSON shape of an artifact.
type ArtifactView struct {
	Path string `json:"path"`
}

// ArtifactDetail adds the adjacent task names to an artifact.
type ArtifactDetail struct {
	Path      string   `json:"path"`
	Producers []string `json:"producers"`
	Consumers []string `json:"consumers"`
}

// Stats summarizes the pipeline shape.
type Stats struct {
	Tasks     int `json:"tasks"`
	Artifacts int `json:"artifacts"`
	Sources   int `json:"sources"`
	Sinks     int `json:"sinks"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TaskFromDomain maps a task to its JSON view.
func TaskFromDomain(t domain.Task) TaskView {
	v := TaskView{
		Name:         t.Name(),
		Dependencies: nonNil(t.Dependencies()),
		Outputs:      nonNil(t.Outputs()),
	}
	if cmd, ok := t.Command(); ok {
		v.Command = &cmd
	}
	return v
}

// ArtifactsFromDomain maps artifacts to views, never returning nil.
func ArtifactsFromDomain(artifacts []domain.Artifact) []ArtifactView {
	out := make([]ArtifactView, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, ArtifactView{Path: a.Path})
	}
	return out
}

// TaskNames returns the task names, never nil.
func TaskNames(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name())
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// StatsOf summarizes a pipeline.
func StatsOf(p interface {
	TaskCount() int
	ArtifactCount() int
	SourceArtifacts() []domain.Artifact
	SinkArtifacts() []domain.Artifact
}) Stats {
	return Stats{
		Tasks:     p.TaskCount(),
		Artifacts: p.ArtifactCount(),
		Sources:   len(p.SourceArtifacts()),
		Sinks:     len(p.SinkArtifacts()),
	}
}
