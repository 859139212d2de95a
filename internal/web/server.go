package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vitos/crypto_scenario/internal/infrastructure/metrics"
	"github.com/vitos/crypto_scenario/internal/usecase"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options struct {
	Port int
	// RateLimitRPS is per client host. Zero or negative disables limiting.
	RateLimitRPS float64
	RateBurst    int
}

type Server struct {
	router   *http.ServeMux
	server   *http.Server
	service  *usecase.AnalysisService
	metrics  *metrics.Registry
	feed     *Feed
	validate *validator.Validate
	limiter  *rateLimiter
	logger   *zap.Logger
}

func NewServer(
	opts Options,
	service *usecase.AnalysisService,
	registry *metrics.Registry,
	logger *zap.Logger,
) *Server {
	if opts.Port == 0 {
		opts.Port = 8080
	}
	limit := rate.Inf
	if opts.RateLimitRPS > 0 {
		limit = rate.Limit(opts.RateLimitRPS)
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 1
	}

	s := &Server{
		router:   http.NewServeMux(),
		service:  service,
		metrics:  registry,
		feed:     NewFeed(registry, logger),
		validate: validator.New(),
		limiter:  newRateLimiter(limit, opts.RateBurst),
		logger:   logger,
	}
	service.Subscribe(s.feed.Broadcast)

	s.routes()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: s.router,
	}
	return s
}

func (s *Server) routes() {
	// Scenario catalogue
	s.router.Handle("GET /api/scenarios", s.api(s.handleListScenarios))
	s.router.Handle("GET /api/scenarios/{number}", s.api(s.handleGetScenario))

	// Analysis
	s.router.Handle("POST /api/analyze", s.api(s.handleAnalyze))

	// History
	s.router.Handle("GET /api/history", s.api(s.handleHistory))
	s.router.Handle("GET /api/history/{id}", s.api(s.handleGetAnalysis))

	// Live feed (not wrapped: the upgrade needs the raw ResponseWriter)
	s.router.HandleFunc("GET /api/feed", s.feed.HandleFeed)

	// Metrics
	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics.Handler())
	}

	// Status
	s.router.HandleFunc("GET /status", s.handleStatus)
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) FeedClients() int {
	return s.feed.Clients()
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.feed.Close()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
