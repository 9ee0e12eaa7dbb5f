package app

import (
  "log/slog"
  "os"
  "strings"

  "release-status/internal/release"
)

type Config struct {
  CorsAllowOrigins string
  Port         string
  BasePath     string
  OtelEndpoint string
  LogLevel     slog.Level
  Release      release.Info
}

func LoadConfigFromEnv() Config {
  cfg := Config{
    Port: "8080",
    BasePath: strings.TrimRight(os.Getenv("BASE_PATH"), "/"),
    OtelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
    CorsAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
    LogLevel: parseLevel(os.Getenv("LOG_LEVEL")),
    Release: release.ResolveFromEnv(os.Getenv("APP_PROPERTIES")),
  }
  if p := os.Getenv("PORT"); p != "" { cfg.Port = p }
  if cfg.CorsAllowOrigins == "" { cfg.CorsAllowOrigins = "*" }
  return cfg
}

func parseLevel(s string) slog.Level {
  var l slog.Level
  if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
    return slog.LevelInfo
  }
  return l
}
