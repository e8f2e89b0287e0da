// Package http exposes tree resolution as a small JSON API.
//
// The surface is described by the embedded OpenAPI contract, which is
// loaded and validated at construction time so a broken contract fails
// at startup instead of at serve time.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rolfedh/adoctree"
	"github.com/rolfedh/adoctree/internal/logging"
	"github.com/rolfedh/adoctree/pkg/ports"
)

//go:embed openapi.yaml
var rawSpec []byte

const apiVersion = "0.1.0"

var (
	resolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adoctree_resolve_total",
			Help: "Total number of tree resolutions served",
		},
		[]string{"status"},
	)
	resolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "adoctree_resolve_duration_seconds",
			Help: "Duration of tree resolutions",
		},
	)
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adoctree_cache_lookups_total",
			Help: "Tree cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(resolveTotal, resolveDuration, cacheLookups)
}

// Server handles the API routes. Construct it through NewHandler.
type Server struct {
	engine ports.TreeEngine
	cache  ports.TreeCache
	root   string
	logger *slog.Logger
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithCache adds a tree cache consulted before resolving. Cache failures
// degrade to a fresh resolution, never to an error response.
func WithCache(cache ports.TreeCache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithDefaultRoot sets the document resolved when a request names no root.
func WithDefaultRoot(root string) Option {
	return func(s *Server) {
		s.root = root
	}
}

// WithLogger sets a custom structured logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.TreeEngine, opts ...Option) (http.Handler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("loading API contract: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating API contract: %w", err)
	}

	server := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	r.Get("/healthz", server.handleHealth)
	r.Get("/info", server.handleInfo)
	r.Get("/api/tree", server.handleTree)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r), nil
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

// handleHealth handles the GET /healthz request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// handleInfo handles the GET /info request.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":         "adoctree-http",
		"version":     adoctree.Version,
		"api_version": apiVersion,
	})
}

// handleTree handles the GET /api/tree request.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	if root == "" {
		root = s.root
	}
	if root == "" {
		http.Error(w, "Missing 'root' query parameter", http.StatusBadRequest)
		return
	}

	timer := prometheus.NewTimer(resolveDuration)
	defer timer.ObserveDuration()

	if s.cache != nil {
		if tree, err := s.cache.Get(r.Context(), root); err == nil {
			cacheLookups.WithLabelValues("hit").Inc()
			resolveTotal.WithLabelValues("ok").Inc()
			s.writeJSON(w, tree)
			return
		}
		cacheLookups.WithLabelValues("miss").Inc()
	}

	tree, err := s.engine.ResolveTree(r.Context(), root)
	if err != nil {
		resolveTotal.WithLabelValues("error").Inc()
		http.Error(w, fmt.Sprintf("Resolve error: %v", err), http.StatusInternalServerError)
		return
	}
	resolveTotal.WithLabelValues("ok").Inc()

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), root, tree); err != nil {
			s.logger.Warn("caching tree", "root", root, "error", err)
		}
	}

	s.writeJSON(w, tree)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>adoctree API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
