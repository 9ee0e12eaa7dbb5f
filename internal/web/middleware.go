package web

import (
  "net/http"
  "strings"
)

// CORSMiddleware answers preflight requests and echoes allowed origins. The
// service is read-only, so only GET/HEAD are advertised.
func CORSMiddleware(corsAllowOrigins string) func(http.Handler) http.Handler {
  allowed := map[string]bool{}
  for _, o := range strings.Split(corsAllowOrigins, ",") {
    if t := strings.TrimSpace(o); t != "" { allowed[t] = true }
  }
  allowAny := allowed["*"]

  return func(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
      if origin := r.Header.Get("Origin"); origin != "" {
        if allowAny || allowed[origin] {
          w.Header().Set("Access-Control-Allow-Origin", origin)
        }
        w.Header().Add("Vary", "Origin")
        w.Header().Set("Access-Control-Allow-Methods", "GET,HEAD,OPTIONS")
      }
      if r.Method == http.MethodOptions {
        w.WriteHeader(http.StatusNoContent)
        return
      }
      next.ServeHTTP(w, r)
    })
  }
}
