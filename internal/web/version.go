package web

import (
  "net/http"

  "release-status/internal/util"
)

type versionResponse struct {
  ArtifactVersion string           `json:"artifact_version"`
  ReleaseNumber   int              `json:"release_number"`
  Build           util.VersionInfo `json:"build"`
}

func (a *API) handleVersion(w http.ResponseWriter, r *http.Request) {
  writeJSON(w, http.StatusOK, versionResponse{
    ArtifactVersion: a.info.ArtifactVersion(),
    ReleaseNumber: a.info.ReleaseNumber(),
    Build: util.GetVersionInfo("release-status"),
  })
}
