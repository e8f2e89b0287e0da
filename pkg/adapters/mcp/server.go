package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/rolfedh/adoctree"
	"github.com/rolfedh/adoctree/pkg/domain"
	"github.com/rolfedh/adoctree/pkg/ports"
)

// TreeResponse aligns with the HTTP API schema and provides a unified structure across adapters.
type TreeResponse struct {
	Root     *domain.Node `json:"root" jsonschema_description:"The resolved include tree"`
	Problems int          `json:"problems" jsonschema_description:"Count of nodes flagged missing, invalid, or self-recursive"`
}

// treeArgs is the argument shape shared by the tree tools.
// It uses "mapstructure" tags to match the tool input schema keys.
type treeArgs struct {
	Root string `mapstructure:"root"`
}

// Engine defines the interface required by the MCP server to resolve trees.
type Engine interface {
	ports.TreeEngine
}

// Server wraps the resolution engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	root      string
	mcpServer *server.MCPServer
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithDefaultRoot sets the document used by the tree resource and by tool
// calls that name no root of their own.
func WithDefaultRoot(root string) Option {
	return func(s *Server) {
		s.root = root
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("adoctree-mcp", strings.TrimSpace(adoctree.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	// Start the SSE server
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: resolve_tree
	resolveTool := mcp.NewTool("resolve_tree",
		mcp.WithDescription("Resolve the include tree for an AsciiDoc document. Returns the annotated tree with per-node flags."),
		mcp.WithString("root", mcp.Description("Path of the starting document (optional if the server has a default)")),
		mcp.WithOutputSchema[TreeResponse](),
	)
	s.mcpServer.AddTool(resolveTool, mcp.NewStructuredToolHandler(s.handleResolveTree))

	// TOOL: list_includes
	listTool := mcp.NewTool("list_includes",
		mcp.WithDescription("List every include target reachable from a document, one per line, prefixed with its status tags."),
		mcp.WithString("root", mcp.Description("Path of the starting document (optional if the server has a default)")),
	)
	s.mcpServer.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, err := s.resolve(ctx, request.GetString("root", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("resolve failed: %v", err)), nil
		}

		var lines []string
		root.Walk(func(node *domain.Node, depth int) {
			if depth == 0 {
				return
			}
			line := filepath.Join(node.BasePath, node.Name)
			if tags := node.Tags(); tags != "" {
				line = tags + " " + line
			}
			lines = append(lines, line)
		})

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}

// handleResolveTree backs the resolve_tree structured tool.
func (s *Server) handleResolveTree(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TreeResponse, error) {
	var params treeArgs
	if err := mapstructure.Decode(args, &params); err != nil {
		return TreeResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	root, err := s.resolve(ctx, params.Root)
	if err != nil {
		return TreeResponse{}, err
	}

	problems := 0
	root.Walk(func(node *domain.Node, depth int) {
		if node.Flagged() {
			problems++
		}
	})

	return TreeResponse{Root: root, Problems: problems}, nil
}

// resolve runs the engine against the requested root, falling back to the
// server default.
func (s *Server) resolve(ctx context.Context, root string) (*domain.Node, error) {
	if root == "" {
		root = s.root
	}
	if root == "" {
		return nil, fmt.Errorf("no root document given and no default configured")
	}
	return s.engine.ResolveTree(ctx, root)
}

func (s *Server) registerResources() {
	// EXPOSE: adoctree://tree
	s.mcpServer.AddResource(mcp.NewResource("adoctree://tree", "Resolved Include Tree",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		root, err := s.resolve(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tree: %w", err)
		}
		jsonBytes, _ := json.Marshal(root)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "adoctree://tree",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
