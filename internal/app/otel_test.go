package app

import (
  "testing"

  "go.opentelemetry.io/otel/attribute"

  "release-status/internal/release"
)

func TestTracerResource_CarriesRelease(t *testing.T) {
  res := tracerResource(release.NewInfo("2.0.1", 4))

  want := map[attribute.Key]string{
    "service.name":    "release-status",
    "service.version": "2.0.1",
    "release.number":  "4",
  }
  got := map[attribute.Key]string{}
  for _, kv := range res.Attributes() {
    got[kv.Key] = kv.Value.Emit()
  }
  for k, v := range want {
    if got[k] != v {
      t.Fatalf("%s: expected %q, got %q", k, v, got[k])
    }
  }
}
