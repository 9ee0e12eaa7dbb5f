package web

import (
  "encoding/json"
  "net/http"
  "testing"

  "release-status/internal/release"
)

func TestVersionEndpoint(t *testing.T) {
  h, _ := newTestRouter(t, release.NewInfo("3.1.4", 2), "")
  rec := get(t, h, "/v1/version")
  if rec.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d", rec.Code)
  }
  var out versionResponse
  if err := json.NewDecoder(rec.Body).Decode(&out); err != nil { t.Fatal(err) }
  if out.ArtifactVersion != "3.1.4" || out.ReleaseNumber != 2 {
    t.Fatalf("unexpected payload: %+v", out)
  }
  if out.Build.Service != "release-status" {
    t.Fatalf("unexpected build info: %+v", out.Build)
  }
}
