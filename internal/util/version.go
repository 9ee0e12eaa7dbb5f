package util

import (
  "runtime"
  "runtime/debug"
  "strings"
)

// Set with -ldflags "-X release-status/internal/util.buildCommit=...".
var (
  buildCommit = ""
  buildDate   = ""
)

type VersionInfo struct {
  Service   string `json:"service"`
  Module    string `json:"module,omitempty"`
  Revision  string `json:"revision,omitempty"`
  BuildTime string `json:"build_time,omitempty"`
  Modified  bool   `json:"modified"`
  GoVersion string `json:"go_version"`
  Platform  string `json:"platform"`
}

func GetVersionInfo(service string) VersionInfo {
  vi := VersionInfo{
    Service: service,
    Revision: buildCommit,
    BuildTime: buildDate,
    GoVersion: runtime.Version(),
    Platform: runtime.GOOS + "/" + runtime.GOARCH,
  }
  if bi, ok := debug.ReadBuildInfo(); ok {
    vi.Module = bi.Main.Path
    applyVCS(&vi, bi.Settings)
  }
  vi.Revision = shortRevision(vi.Revision)
  return vi
}

// applyVCS fills whatever ldflags left empty from the toolchain's VCS stamp.
func applyVCS(vi *VersionInfo, settings []debug.BuildSetting) {
  for _, s := range settings {
    switch s.Key {
    case "vcs.revision":
      if vi.Revision == "" { vi.Revision = s.Value }
    case "vcs.time":
      if vi.BuildTime == "" { vi.BuildTime = s.Value }
    case "vcs.modified":
      vi.Modified = s.Value == "true"
    }
  }
}

func shortRevision(rev string) string {
  rev = strings.TrimSpace(rev)
  if len(rev) > 12 { return rev[:12] }
  return rev
}
