/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing DPCL pipelines.

It lets callers declare tasks with a fluent builder instead of a YAML or JSON manifest. This is
particularly useful for unit tests, generated pipelines and leveraging IDE autocompletion.

Example usage:

	package main

	import (
		"github.com/aretw0/dpcl/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Task("compile").
			Needs("main.c").
			Makes("main.o").
			Run("cc -c main.c")

		b.Task("link").
			Needs("main.o").
			Makes("app").
			Run("cc -o app main.o")

		p, err := b.Build()
		// ... query p.TaskDependencies("link")
	}

Tasks are added to the pipeline in the order they were first declared.
*/
package dsl
