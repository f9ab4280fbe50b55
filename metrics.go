package siteprobe

import (
	"time"

	"github.com/foomo/siteprobe/vo"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	prometheusLabelStage   = "stage"
	prometheusLabelOutcome = "outcome"
	prometheusLabelField   = "field"

	metricsLabelHomepage = "homepage"
)

// Metrics of a single run, a nil *Metrics records nothing
type Metrics struct {
	requestDurations *prometheus.SummaryVec
	outcomes         *prometheus.CounterVec
	blocksFound      prometheus.Gauge
	fieldsMissing    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestDurations: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "siteprobe_request_durations_seconds",
				Help:       "request duration whole request time including streaming of body",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelStage},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "siteprobe_request_outcomes_total",
				Help: "classified outcomes of probe requests",
			},
			[]string{prometheusLabelStage, prometheusLabelOutcome},
		),
		blocksFound: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "siteprobe_diagnostic_blocks_found",
				Help: "listing blocks matched by the container selector",
			},
		),
		fieldsMissing: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "siteprobe_diagnostic_fields_missing_total",
				Help: "fields not found in the sampled blocks",
			},
			[]string{prometheusLabelField},
		),
	}
	reg.MustRegister(
		m.requestDurations,
		m.outcomes,
		m.blocksFound,
		m.fieldsMissing,
	)
	return m
}

func (m *Metrics) observeRequest(stage string, dur time.Duration) {
	if m == nil {
		return
	}
	m.requestDurations.WithLabelValues(stage).Observe(dur.Seconds())
}

func (m *Metrics) observeOutcome(stage vo.Stage, outcome vo.Outcome) {
	if m == nil {
		return
	}
	// no response, no duration
	if outcome.Duration > 0 {
		m.requestDurations.WithLabelValues(string(stage)).Observe(outcome.Duration.Seconds())
	}
	m.outcomes.WithLabelValues(string(stage), outcome.Kind.String()).Inc()
}

func (m *Metrics) observeDiagnosis(r vo.DiagnosticReport) {
	if m == nil {
		return
	}
	m.blocksFound.Set(float64(r.Found))
	for _, record := range r.Records {
		for _, field := range record.Missing() {
			m.fieldsMissing.WithLabelValues(field).Inc()
		}
	}
}
