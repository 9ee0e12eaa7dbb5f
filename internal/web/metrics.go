package web

import (
  "github.com/prometheus/client_golang/prometheus"

  "release-status/internal/release"
)

type Metrics struct {
  pageViews *prometheus.CounterVec
  invalid   prometheus.Counter
  release   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer, info release.Info) *Metrics {
  m := &Metrics{
    pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
      Name: "release_status_page_views_total",
      Help: "Status pages rendered, by computed status.",
    }, []string{"status"}),
    invalid: prometheus.NewCounter(prometheus.CounterOpts{
      Name: "release_status_invalid_requests_total",
      Help: "Requests for a version outside the served range.",
    }),
    release: prometheus.NewGauge(prometheus.GaugeOpts{
      Name: "release_status_release_number",
      Help: "Configured release number.",
      ConstLabels: prometheus.Labels{"artifact_version": info.ArtifactVersion()},
    }),
  }
  reg.MustRegister(m.pageViews, m.invalid, m.release)
  m.release.Set(float64(info.ReleaseNumber()))
  return m
}

func (m *Metrics) observe(s release.Status) {
  if m == nil { return }
  m.pageViews.WithLabelValues(s.String()).Inc()
}

func (m *Metrics) observeInvalid() {
  if m == nil { return }
  m.invalid.Inc()
}
