package app

import (
  "context"
  "log/slog"
  "net/http"
  "os"

  "github.com/go-chi/chi/v5"
  "github.com/prometheus/client_golang/prometheus"
  "github.com/prometheus/client_golang/prometheus/collectors"
  "github.com/prometheus/client_golang/prometheus/promhttp"

  "release-status/internal/web"
)

type App struct {
  cfg Config
  log *slog.Logger
  reg *prometheus.Registry

  shutdownTracer func(context.Context) error

  router http.Handler
  done chan struct{}
}

func New(ctx context.Context, cfg Config) (*App, error) {
  logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
  shutdown, err := initTracer(ctx, cfg.OtelEndpoint, cfg.Release)
  if err != nil { return nil, err }

  reg := prometheus.NewRegistry()
  reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

  a := &App{
    cfg: cfg, log: logger, reg: reg,
    shutdownTracer: shutdown,
    done: make(chan struct{}),
  }
  a.router = newRouter(cfg, reg, logger)

  logger.Info("release configuration resolved",
    "artifact_version", cfg.Release.ArtifactVersion(),
    "release_number", cfg.Release.ReleaseNumber(),
  )
  return a, nil
}

func newRouter(cfg Config, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
  metrics := web.NewMetrics(reg, cfg.Release)
  api := web.NewAPI(cfg.Release, cfg.BasePath, metrics, logger)

  r := chi.NewRouter()
  r.Use(web.CORSMiddleware(cfg.CorsAllowOrigins))
  r.Get("/healthz", func(w http.ResponseWriter, r *http.Request){ w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
  r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

  if cfg.BasePath == "" {
    api.RegisterRoutes(r)
  } else {
    r.Route(cfg.BasePath, api.RegisterRoutes)
  }
  return r
}

func (a *App) Router() http.Handler { return a.router }

func (a *App) Done() <-chan struct{} { return a.done }

func (a *App) Close() {
  defer close(a.done)
  if a.shutdownTracer != nil {
    _ = a.shutdownTracer(context.Background())
  }
}
