/*
Package pipeline implements the DPCL pipeline graph.

A pipeline is a directed bipartite graph of tasks and artifacts. An edge from an artifact to a
task means the task depends on the artifact; an edge from a task to an artifact means the task
produces it. Tasks and artifacts are looked up by name and path through two indexes kept in
sync with the node arena.

The graph is append-only: AddTask is the only mutation and nothing is ever removed. It does
not execute, schedule or check tasks for cycles.

A Pipeline performs no locking. Confine it to one goroutine while tasks are being added;
once construction is done it may be shared for concurrent reads.
*/
package pipeline
