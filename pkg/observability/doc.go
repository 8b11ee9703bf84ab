/*
Package observability exposes pipeline shape as Prometheus metrics.

The collector reads the pipeline on every scrape, so it needs no hooks into AddTask and
always reports the current counts.
*/
package observability
