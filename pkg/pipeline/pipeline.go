package pipeline

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/aretw0/dpcl/pkg/domain"
)

// Pipeline is the task/artifact graph plus its name indexes.
type Pipeline struct {
	nodes     []node
	tasks     map[string]nodeID
	artifacts map[string]nodeID
	logger    *slog.Logger
}

// New creates an empty pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		tasks:     make(map[string]nodeID),
		artifacts: make(map[string]nodeID),
		logger:    defaultLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddTask registers a task and wires it to its dependency and output artifacts,
// creating artifact nodes for paths not seen before.
//
// A name that is already registered is rejected with a *domain.DuplicateTaskError and the
// pipeline is left unchanged. An unnamed task, such as the zero Task, is rejected with
// domain.ErrMissingTaskName.
func (p *Pipeline) AddTask(task domain.Task) error {
	name := task.Name()
	if name == "" {
		return domain.ErrMissingTaskName
	}
	if _, exists := p.tasks[name]; exists {
		return &domain.DuplicateTaskError{Name: name}
	}

	id := p.insert(node{kind: kindTask, task: task})
	p.tasks[name] = id

	// Nothing below can fail, so the mutation is all-or-nothing.
	for _, path := range task.Dependencies() {
		p.connect(p.findOrInsertArtifact(path), id)
	}
	for _, path := range task.Outputs() {
		p.connect(id, p.findOrInsertArtifact(path))
	}

	p.logger.Debug("task added",
		"task", name,
		"dependencies", len(p.nodes[id].in),
		"outputs", len(p.nodes[id].out),
	)
	return nil
}

// findOrInsertArtifact is the only place artifact nodes are created, which keeps one node per path.
func (p *Pipeline) findOrInsertArtifact(path string) nodeID {
	if id, ok := p.artifacts[path]; ok {
		return id
	}
	id := p.insert(node{kind: kindArtifact, artifact: domain.Artifact{Path: path}})
	p.artifacts[path] = id
	p.logger.Debug("artifact created", "path", path)
	return id
}

func (p *Pipeline) insert(n node) nodeID {
	p.nodes = append(p.nodes, n)
	return nodeID(len(p.nodes) - 1)
}

// connect adds the edge from -> to unless it already exists.
func (p *Pipeline) connect(from, to nodeID) {
	if slices.Contains(p.nodes[from].out, to) {
		return
	}
	p.nodes[from].out = append(p.nodes[from].out, to)
	p.nodes[to].in = append(p.nodes[to].in, from)
}

// GetTask returns the task registered under name.
func (p *Pipeline) GetTask(name string) (domain.Task, bool) {
	id, ok := p.tasks[name]
	if !ok {
		return domain.Task{}, false
	}
	return p.mustKind(id, kindTask).task, true
}

// GetArtifact returns the artifact known under path.
func (p *Pipeline) GetArtifact(path string) (domain.Artifact, bool) {
	id, ok := p.artifacts[path]
	if !ok {
		return domain.Artifact{}, false
	}
	return p.mustKind(id, kindArtifact).artifact, true
}

// TaskDependencies returns the artifacts the named task depends on.
// The order is unspecified. An unknown name yields an empty slice.
func (p *Pipeline) TaskDependencies(name string) []domain.Artifact {
	id, ok := p.tasks[name]
	if !ok {
		return []domain.Artifact{}
	}
	return p.artifactsAt(p.mustKind(id, kindTask).in)
}

// TaskOutputs returns the artifacts the named task produces.
// The order is unspecified. An unknown name yields an empty slice.
func (p *Pipeline) TaskOutputs(name string) []domain.Artifact {
	id, ok := p.tasks[name]
	if !ok {
		return []domain.Artifact{}
	}
	return p.artifactsAt(p.mustKind(id, kindTask).out)
}

// ArtifactProducers returns the tasks that output the artifact at path.
func (p *Pipeline) ArtifactProducers(path string) []domain.Task {
	id, ok := p.artifacts[path]
	if !ok {
		return []domain.Task{}
	}
	return p.tasksAt(p.mustKind(id, kindArtifact).in)
}

// ArtifactConsumers returns the tasks that depend on the artifact at path.
func (p *Pipeline) ArtifactConsumers(path string) []domain.Task {
	id, ok := p.artifacts[path]
	if !ok {
		return []domain.Task{}
	}
	return p.tasksAt(p.mustKind(id, kindArtifact).out)
}

// TaskCount returns the number of registered tasks.
func (p *Pipeline) TaskCount() int {
	return len(p.tasks)
}

// ArtifactCount returns the number of distinct artifact paths.
func (p *Pipeline) ArtifactCount() int {
	return len(p.artifacts)
}

// Tasks returns every registered task sorted by name.
func (p *Pipeline) Tasks() []domain.Task {
	names := slices.Sorted(maps.Keys(p.tasks))
	out := make([]domain.Task, 0, len(names))
	for _, name := range names {
		out = append(out, p.mustKind(p.tasks[name], kindTask).task)
	}
	return out
}

// Artifacts returns every artifact sorted by path.
func (p *Pipeline) Artifacts() []domain.Artifact {
	return p.artifactsWhere(func(*node) bool { return true })
}

// SourceArtifacts returns the artifacts no task produces, sorted by path.
func (p *Pipeline) SourceArtifacts() []domain.Artifact {
	return p.artifactsWhere(func(n *node) bool { return len(n.in) == 0 })
}

// SinkArtifacts returns the artifacts no task depends on, sorted by path.
func (p *Pipeline) SinkArtifacts() []domain.Artifact {
	return p.artifactsWhere(func(n *node) bool { return len(n.out) == 0 })
}

func (p *Pipeline) artifactsWhere(keep func(*node) bool) []domain.Artifact {
	paths := slices.Sorted(maps.Keys(p.artifacts))
	out := make([]domain.Artifact, 0, len(paths))
	for _, path := range paths {
		n := p.mustKind(p.artifacts[path], kindArtifact)
		if keep(n) {
			out = append(out, n.artifact)
		}
	}
	return out
}

func (p *Pipeline) artifactsAt(ids []nodeID) []domain.Artifact {
	out := make([]domain.Artifact, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.mustKind(id, kindArtifact).artifact)
	}
	return out
}

func (p *Pipeline) tasksAt(ids []nodeID) []domain.Task {
	out := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.mustKind(id, kindTask).task)
	}
	return out
}

// mustKind returns the node at id and panics if it is missing or of the wrong kind.
// Either case means the indexes and the arena have diverged.
func (p *Pipeline) mustKind(id nodeID, want nodeKind) *node {
	if id < 0 || int(id) >= len(p.nodes) {
		panic(fmt.Sprintf("pipeline: index refers to missing node %d (have %d)", id, len(p.nodes)))
	}
	n := &p.nodes[id]
	if n.kind != want {
		panic(fmt.Sprintf("pipeline: node %d is a %s, expected %s", id, n.kind, want))
	}
	return n
}
