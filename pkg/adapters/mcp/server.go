package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/dpcl"
	"github.com/aretw0/dpcl/internal/dto"
	"github.com/aretw0/dpcl/internal/logging"
	"github.com/aretw0/dpcl/internal/presentation/graph"
	"github.com/aretw0/dpcl/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const graphURI = "dpcl://graph"

// Pipeline defines the read-only queries the MCP server exposes.
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

// Server wraps a Pipeline and exposes it as an MCP Server.
type Server struct {
	pipeline  Pipeline
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used by the SSE transport.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(p Pipeline, opts ...Option) *Server {
	s := &Server{
		pipeline:  p,
		mcpServer: server.NewMCPServer("dpcl-mcp", strings.TrimSpace(dpcl.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, mainly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// SSEHandler returns the SSE transport routes (/sse and /message) for a server
// reachable at baseURL.
func (s *Server) SSEHandler(baseURL string) http.Handler {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))
	return mux
}

// ServeSSE serves the SSE transport on the given port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port string) error {
	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           s.SSEHandler("http://localhost:" + port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", httpServer.Addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_task",
		mcp.WithDescription("Look up a task by name. Returns its command, dependencies and outputs."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
	), s.handleGetTask)

	s.mcpServer.AddTool(mcp.NewTool("get_artifact",
		mcp.WithDescription("Look up an artifact by path, with the tasks producing and consuming it."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Artifact path")),
	), s.handleGetArtifact)

	s.mcpServer.AddTool(mcp.NewTool("task_dependencies",
		mcp.WithDescription("List the artifacts a task depends on. Unknown tasks yield an empty list."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
	), s.handleTaskDependencies)

	s.mcpServer.AddTool(mcp.NewTool("task_outputs",
		mcp.WithDescription("List the artifacts a task produces. Unknown tasks yield an empty list."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
	), s.handleTaskOutputs)

	s.mcpServer.AddTool(mcp.NewTool("pipeline_stats",
		mcp.WithDescription("Count tasks, artifacts, source artifacts and sink artifacts."),
	), s.handleStats)

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the whole pipeline as a Mermaid flowchart."),
		mcp.WithString("focus", mcp.Description("Task to highlight (optional)")),
	), s.handleGetGraph)
}

func (s *Server) handleGetTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	task, ok := s.pipeline.GetTask(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", name)), nil
	}
	return jsonResult(dto.TaskFromDomain(task))
}

func (s *Server) handleGetArtifact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	artifact, ok := s.pipeline.GetArtifact(path)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("artifact not found: %s", path)), nil
	}
	return jsonResult(dto.ArtifactDetail{
		Path:      artifact.Path,
		Producers: dto.TaskNames(s.pipeline.ArtifactProducers(path)),
		Consumers: dto.TaskNames(s.pipeline.ArtifactConsumers(path)),
	})
}

func (s *Server) handleTaskDependencies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ArtifactsFromDomain(s.pipeline.TaskDependencies(name)))
}

func (s *Server) handleTaskOutputs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ArtifactsFromDomain(s.pipeline.TaskOutputs(name)))
}

func (s *Server) handleStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(dto.StatsOf(s.pipeline))
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var overlay *graph.GraphOverlay
	if focus := request.GetString("focus", ""); focus != "" {
		overlay = &graph.GraphOverlay{FocusTask: focus}
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(s.pipeline, overlay)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: dpcl://graph
	s.mcpServer.AddResource(mcp.NewResource(graphURI, "Pipeline Graph",
		mcp.WithResourceDescription("Mermaid flowchart of every task and artifact"),
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      graphURI,
				MIMEType: "text/plain",
				Text:     graph.GenerateMermaid(s.pipeline, nil),
			},
		}, nil
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
