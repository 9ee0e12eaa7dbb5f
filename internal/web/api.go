package web

import (
  "encoding/json"
  "net/http"

  "github.com/go-chi/chi/v5"
  "log/slog"

  "release-status/internal/release"
)

type API struct {
  info     release.Info
  basePath string
  log      *slog.Logger
  metrics  *Metrics
}

func NewAPI(info release.Info, basePath string, metrics *Metrics, log *slog.Logger) *API {
  if log == nil { log = slog.Default() }
  return &API{info: info, basePath: basePath, metrics: metrics, log: log}
}

func (a *API) RegisterRoutes(r chi.Router) {
  r.Get("/", a.handleIndex)
  r.Get("/version", a.handleVersionStatus)
  r.Get("/version{n}", a.handleVersionStatus)
  r.Get("/v1/version", a.handleVersion)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
  w.Header().Set("content-type", "application/json")
  w.WriteHeader(status)
  _ = json.NewEncoder(w).Encode(v)
}
