package pipeline

import (
	"fmt"

	"github.com/aretw0/dpcl/pkg/domain"
)

// nodeID is a stable handle into the node arena.
type nodeID int

type nodeKind uint8

const (
	kindTask nodeKind = iota + 1
	kindArtifact
)

func (k nodeKind) String() string {
	switch k {
	case kindTask:
		return "task"
	case kindArtifact:
		return "artifact"
	default:
		return fmt.Sprintf("nodeKind(%d)", k)
	}
}

// node is one vertex of the graph. Exactly one of task or artifact is meaningful, selected by kind.
// in and out hold the adjacent nodes in edge insertion order.
type node struct {
	kind     nodeKind
	task     domain.Task
	artifact domain.Artifact
	in       []nodeID
	out      []nodeID
}
