package util

import (
  "runtime"
  "runtime/debug"
  "testing"
)

func TestGetVersionInfo_Runtime(t *testing.T) {
  vi := GetVersionInfo("svc")
  if vi.Service != "svc" {
    t.Fatalf("service: got %q", vi.Service)
  }
  if vi.GoVersion != runtime.Version() {
    t.Fatalf("go version: got %q", vi.GoVersion)
  }
  if vi.Platform != runtime.GOOS+"/"+runtime.GOARCH {
    t.Fatalf("platform: got %q", vi.Platform)
  }
}

func TestApplyVCS_KeepsLdflagsValues(t *testing.T) {
  vi := VersionInfo{Revision: "abc"}
  applyVCS(&vi, []debug.BuildSetting{
    {Key: "vcs.revision", Value: "def"},
    {Key: "vcs.time", Value: "2026-01-19T00:00:00Z"},
    {Key: "vcs.modified", Value: "true"},
  })
  if vi.Revision != "abc" {
    t.Fatalf("revision overwritten: %q", vi.Revision)
  }
  if vi.BuildTime != "2026-01-19T00:00:00Z" || !vi.Modified {
    t.Fatalf("unexpected vcs fields: %+v", vi)
  }
}

func TestShortRevision(t *testing.T) {
  if got := shortRevision("0123456789abcdef"); got != "0123456789ab" {
    t.Fatalf("got %q", got)
  }
  if got := shortRevision(" abc "); got != "abc" {
    t.Fatalf("got %q", got)
  }
}
