/*
Package dpcl models build-style pipelines as an explicit dependency graph between tasks and
the artifacts they consume and produce.

# Concept

A pipeline is a directed bipartite graph. Tasks are units of work; artifacts are files or
data identified by path. An artifact feeding a task is a dependency edge, a task producing an
artifact is an output edge. Artifacts are deduplicated by path across the whole pipeline, so
the output of one task and the dependency of another meet in a single node.

This module describes structure only. It does not run tasks, schedule them or reject cycles.

# Usage

Open a task manifest from disk, or build a pipeline in code with package dsl.

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/dpcl"
	)

	func main() {
		project, err := dpcl.Open("dpcl.yaml")
		if err != nil {
			log.Fatal(err)
		}

		for _, a := range project.Pipeline.TaskDependencies("link") {
			fmt.Println(a.Path)
		}
	}

# Packages

  - pkg/domain: Task, Artifact and the task builder.
  - pkg/pipeline: the graph and its queries.
  - pkg/dsl: fluent construction of whole pipelines.
  - pkg/manifest: YAML/JSON task manifests.
  - pkg/adapters/http, pkg/adapters/mcp: read-only query surfaces.
  - pkg/observability: Prometheus metrics over a pipeline.
*/
package dpcl
