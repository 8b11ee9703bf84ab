package observability

import (
	"github.com/aretw0/dpcl/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "dpcl"

// Source is the read-only view of a pipeline the collector samples.
type Source interface {
	TaskCount() int
	ArtifactCount() int
	SourceArtifacts() []domain.Artifact
	SinkArtifacts() []domain.Artifact
}

// Collector implements prometheus.Collector over a pipeline.
type Collector struct {
	source Source

	tasks     *prometheus.Desc
	artifacts *prometheus.Desc
	sources   *prometheus.Desc
	sinks     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for the given pipeline.
func NewCollector(source Source) *Collector {
	return &Collector{
		source: source,
		tasks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "tasks"),
			"Number of tasks registered in the pipeline.",
			nil, nil,
		),
		artifacts: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "artifacts"),
			"Number of distinct artifacts in the pipeline.",
			nil, nil,
		),
		sources: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "source_artifacts"),
			"Number of artifacts no task produces.",
			nil, nil,
		),
		sinks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "sink_artifacts"),
			"Number of artifacts no task depends on.",
			nil, nil,
		),
	}
}

// Describe sends the metric descriptors.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tasks
	ch <- c.artifacts
	ch <- c.sources
	ch <- c.sinks
}

// Collect samples the pipeline.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue, float64(c.source.TaskCount()))
	ch <- prometheus.MustNewConstMetric(c.artifacts, prometheus.GaugeValue, float64(c.source.ArtifactCount()))
	ch <- prometheus.MustNewConstMetric(c.sources, prometheus.GaugeValue, float64(len(c.source.SourceArtifacts())))
	ch <- prometheus.MustNewConstMetric(c.sinks, prometheus.GaugeValue, float64(len(c.source.SinkArtifacts())))
}

// NewRegistry returns a registry holding the pipeline collector plus the
// standard Go and process collectors.
func NewRegistry(source Source) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewCollector(source),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
