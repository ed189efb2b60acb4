// Package daemon hosts the SiteProof analysis HTTP/Connect server.
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/juggajay/siteproof-v2-sub000/internal/agent"
	"github.com/juggajay/siteproof-v2-sub000/internal/analysis"
	"github.com/juggajay/siteproof-v2-sub000/internal/config"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm/configbuilder"
	"github.com/juggajay/siteproof-v2-sub000/internal/observability"
	analysisrpc "github.com/juggajay/siteproof-v2-sub000/internal/rpc/analysis"
	toolrpc "github.com/juggajay/siteproof-v2-sub000/internal/rpc/tools"
	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

// Server wires providers, tools, the conversation driver and the RPC surface
// together and runs the HTTP listener.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	svc     *analysis.Service
	metrics *observability.Metrics
	tools   *tools.Registry
}

// NewServer builds the full dependency graph from configuration. All
// construction happens here, up front; nothing is lazily initialised on the
// request path.
func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	models, err := configbuilder.BuildRegistryFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	metrics := observability.NewMetrics()
	toolRegistry := tools.NewRegistry()
	driver := agent.NewDriver(models, toolRegistry, cfg.Analysis, logger, metrics)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		svc:     analysis.NewService(driver, logger),
		metrics: metrics,
		tools:   toolRegistry,
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.buildHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting siteproof daemon",
			zap.String("addr", s.cfg.Server.Addr),
			zap.String("transport", s.cfg.Server.Transport))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down siteproof daemon")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// buildHandler mounts the JSON analysis endpoints, tool catalogue and ops
// routes; the Connect procedure (with h2c) is added unless transport=json.
func (s *Server) buildHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/metrics", s.metricsHandler)
	mux.Handle("/tools/schemas", toolrpc.SchemaHandler{Registry: s.tools})

	jsonHandler := analysisrpc.NewHandler(s.svc, s.metrics, s.logger)
	mux.HandleFunc("/v1/analysis/query", jsonHandler.Query)
	mux.HandleFunc("/v1/analysis/compliance", jsonHandler.Compliance)
	mux.HandleFunc("/v1/analysis/weather", jsonHandler.Weather)
	mux.HandleFunc("/v1/analysis/schedule", jsonHandler.Schedule)

	if strings.EqualFold(strings.TrimSpace(s.cfg.Server.Transport), "json") {
		return mux
	}

	path, handler := analysisrpc.NewConnectHandler(s.svc, s.metrics)
	mux.Handle(path, handler)
	return h2c.NewHandler(mux, &http2.Server{})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.Server.MetricsEnabled {
		http.NotFound(w, r)
		return
	}
	promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
