package web

import (
  "bytes"
  "html/template"
  "net/http"
  "strconv"
  "strings"

  "go.opentelemetry.io/otel"
  "go.opentelemetry.io/otel/attribute"

  "release-status/internal/release"
)

const invalidVersionMsg = "Invalid version endpoint."

var htmlEntities = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeHTML only rewrites &, < and >, in a single pass.
func escapeHTML(s string) template.HTML { return template.HTML(htmlEntities.Replace(s)) }

var statusPage = template.Must(template.New("status").Parse(`<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Release Status - Version {{.Version}}</title>
</head>
<body>
<h1>Release Status - Version {{.Version}}</h1>
<p>Artifact version: <strong>{{.ArtifactVersion}}</strong></p>
<p>Current release number: <strong>{{.ReleaseNumber}}</strong></p>
<p style="color: {{.Status.Color}}; font-weight: bold;">
{{- if eq .Status.String "OLDER_RELEASE"}}
This version belongs to an <strong>{{.Status.Label}}</strong>.
{{- else}}
This version is <strong>{{.Status.Label}}</strong>.
{{- end}}
</p>
<hr>
<p><a href="{{.IndexHref}}">Back to index</a></p>
</body>
</html>
`))

var indexPage = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Release Status</title>
</head>
<body>
<h1>Release Status</h1>
<p>Artifact version: <strong>{{.ArtifactVersion}}</strong></p>
<p>Current release number: <strong>{{.ReleaseNumber}}</strong></p>
<ul>
{{- range .Links}}
  <li><a href="{{.Href}}">Version {{.Version}}</a> ({{.Status.Label}})</li>
{{- end}}
</ul>
</body>
</html>
`))

type statusView struct {
  Version         int
  ArtifactVersion template.HTML
  ReleaseNumber   int
  Status          release.Status
  IndexHref       string
}

type indexLink struct {
  Version int
  Href    string
  Status  release.Status
}

// parseVersionPath returns the number after the last "version" in path, or -1.
func parseVersionPath(path string) int {
  i := strings.LastIndex(path, "version")
  if i < 0 { return -1 }
  n, err := strconv.Atoi(path[i+len("version"):])
  if err != nil { return -1 }
  return n
}

func (a *API) handleVersionStatus(w http.ResponseWriter, r *http.Request) {
  version := parseVersionPath(r.URL.Path)
  if !release.ValidVersion(version) {
    a.metrics.observeInvalid()
    a.log.Debug("invalid version endpoint", "path", r.URL.Path)
    http.Error(w, invalidVersionMsg, http.StatusBadRequest)
    return
  }
  a.renderStatus(w, r, version)
}

func (a *API) renderStatus(w http.ResponseWriter, r *http.Request, version int) {
  rel := a.info.ReleaseNumber()
  status := release.Classify(rel, version)

  _, span := otel.Tracer("release-status/web").Start(r.Context(), "renderStatus")
  defer span.End()
  span.SetAttributes(
    attribute.Int("release.version", version),
    attribute.Int("release.number", rel),
    attribute.String("release.status", status.String()),
  )

  a.metrics.observe(status)
  a.log.Debug("status page", "version", version, "release", rel, "status", status.String())

  a.writeHTML(w, statusPage, statusView{
    Version: version,
    ArtifactVersion: escapeHTML(a.info.ArtifactVersion()),
    ReleaseNumber: rel,
    Status: status,
    IndexHref: a.basePath + "/",
  })
}

func (a *API) handleIndex(w http.ResponseWriter, r *http.Request) {
  rel := a.info.ReleaseNumber()
  links := make([]indexLink, 0, release.MaxVersion)
  for v := release.MinVersion; v <= release.MaxVersion; v++ {
    links = append(links, indexLink{
      Version: v,
      Href: a.basePath + "/version" + strconv.Itoa(v),
      Status: release.Classify(rel, v),
    })
  }
  a.writeHTML(w, indexPage, map[string]any{
    "ArtifactVersion": escapeHTML(a.info.ArtifactVersion()),
    "ReleaseNumber": rel,
    "Links": links,
  })
}

func (a *API) writeHTML(w http.ResponseWriter, t *template.Template, data any) {
  var buf bytes.Buffer
  if err := t.Execute(&buf, data); err != nil {
    a.log.Error("render failed", "template", t.Name(), "err", err.Error())
    http.Error(w, "internal error", http.StatusInternalServerError)
    return
  }
  w.Header().Set("content-type", "text/html; charset=utf-8")
  w.WriteHeader(http.StatusOK)
  _, _ = w.Write(buf.Bytes())
}
