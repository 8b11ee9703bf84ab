package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/dpcl"
	"github.com/aretw0/dpcl/internal/dto"
	"github.com/aretw0/dpcl/internal/logging"
	"github.com/aretw0/dpcl/internal/presentation/graph"
	"github.com/aretw0/dpcl/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline defines the read-only queries the server exposes.
type Pipeline interface {
	graph.Graph
	GetTask(name string) (domain.Task, bool)
	GetArtifact(path string) (domain.Artifact, bool)
	ArtifactProducers(path string) []domain.Task
	ArtifactConsumers(path string) []domain.Task
	TaskCount() int
	ArtifactCount() int
	SinkArtifacts() []domain.Artifact
}

// Server serves pipeline queries over JSON.
// The pipeline must not be mutated while the server is running.
type Server struct {
	Pipeline Pipeline
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option defines a functional option for the handler.
type Option func(*Server)

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts /metrics backed by the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the pipeline.
func NewHandler(p Pipeline, opts ...Option) http.Handler {
	s := &Server{
		Pipeline: p,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/stats", s.GetStats)
	r.Get("/graph", s.GetGraph)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.ListTasks)
		r.Get("/{name}", s.GetTask)
		r.Get("/{name}/dependencies", s.GetTaskDependencies)
		r.Get("/{name}/outputs", s.GetTaskOutputs)
	})

	r.Get("/artifacts", s.ListArtifacts)
	// Artifact paths usually contain slashes, so the remainder of the URL is the path.
	r.Get("/artifacts/*", s.GetArtifact)

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListTasks handles the GET /tasks request.
func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := s.Pipeline.Tasks()
	resp := make([]dto.TaskView, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, dto.TaskFromDomain(t))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetTask handles the GET /tasks/{name} request.
func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	name, ok := s.param(w, r, "name")
	if !ok {
		return
	}
	task, found := s.Pipeline.GetTask(name)
	if !found {
		s.writeError(w, http.StatusNotFound, "task not found: "+name)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.TaskFromDomain(task))
}

// GetTaskDependencies handles the GET /tasks/{name}/dependencies request.
// An unknown task yields an empty list, like the pipeline query itself.
func (s *Server) GetTaskDependencies(w http.ResponseWriter, r *http.Request) {
	name, ok := s.param(w, r, "name")
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, dto.ArtifactsFromDomain(s.Pipeline.TaskDependencies(name)))
}

// GetTaskOutputs handles the GET /tasks/{name}/outputs request.
func (s *Server) GetTaskOutputs(w http.ResponseWriter, r *http.Request) {
	name, ok := s.param(w, r, "name")
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, dto.ArtifactsFromDomain(s.Pipeline.TaskOutputs(name)))
}

// ListArtifacts handles the GET /artifacts request.
func (s *Server) ListArtifacts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, dto.ArtifactsFromDomain(s.Pipeline.Artifacts()))
}

// GetArtifact handles the GET /artifacts/{path...} request.
func (s *Server) GetArtifact(w http.ResponseWriter, r *http.Request) {
	path, ok := s.param(w, r, "*")
	if !ok {
		return
	}
	artifact, found := s.Pipeline.GetArtifact(path)
	if !found {
		s.writeError(w, http.StatusNotFound, "artifact not found: "+path)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.ArtifactDetail{
		Path:      artifact.Path,
		Producers: dto.TaskNames(s.Pipeline.ArtifactProducers(path)),
		Consumers: dto.TaskNames(s.Pipeline.ArtifactConsumers(path)),
	})
}

// GetStats handles the GET /stats request.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, dto.StatsOf(s.Pipeline))
}

// GetGraph handles the GET /graph request. ?focus=<task> highlights one task.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if focus := r.URL.Query().Get("focus"); focus != "" {
		overlay = &graph.GraphOverlay{FocusTask: focus}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(graph.GenerateMermaid(s.Pipeline, overlay))); err != nil {
		s.logger.Error("GetGraph write failed", "error", err)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "dpcl-http",
		"version": strings.TrimSpace(dpcl.Version),
	})
}

// param returns the unescaped chi URL parameter, writing 400 if it is empty or malformed.
func (s *Server) param(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	raw := chi.URLParam(r, key)
	value := raw
	var err error
	// chi matches against RawPath when the request carried escaped slashes.
	if r.URL.RawPath != "" {
		value, err = url.PathUnescape(raw)
	}
	if err != nil || value == "" {
		s.writeError(w, http.StatusBadRequest, "invalid "+key+" parameter")
		s.logger.Warn("invalid url parameter", "key", key, "raw", raw, "error", err)
		return "", false
	}
	return value, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, dto.ErrorResponse{Error: msg})
}
