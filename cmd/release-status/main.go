package main

import (
  "context"
  "errors"
  "log"
  "net/http"
  "os/signal"
  "syscall"
  "time"

  "release-status/internal/app"
)

const shutdownGrace = 5 * time.Second

func main() {
  cfg := app.LoadConfigFromEnv()

  ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
  defer stop()

  a, err := app.New(ctx, cfg)
  if err != nil {
    log.Fatalf("init: %v", err)
  }
  defer a.Close()

  srv := &http.Server{
    Addr:              ":" + cfg.Port,
    Handler:           a.Router(),
    ReadHeaderTimeout: 5 * time.Second,
  }

  log.Printf("release-status listening on :%s (release %d, artifact %s)", cfg.Port, cfg.Release.ReleaseNumber(), cfg.Release.ArtifactVersion())
  if err := serve(ctx, srv); err != nil {
    log.Fatalf("http: %v", err)
  }
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
  errc := make(chan error, 1)
  go func() { errc <- srv.ListenAndServe() }()

  select {
  case err := <-errc:
    if errors.Is(err, http.ErrServerClosed) { return nil }
    return err
  case <-ctx.Done():
  }

  shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
  defer cancel()
  return srv.Shutdown(shutdownCtx)
}
