// Package metrics exposes Prometheus collectors for resume analysis.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_analyzer"

// Outcome labels for analyses_total.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeInternalError   = "internal_error"
)

// Recorder records analysis metrics.
type Recorder struct {
	registry *prometheus.Registry

	analyses           *prometheus.CounterVec
	extractionFailures *prometheus.CounterVec
	matchScore         prometheus.Histogram
	missingKeywords    prometheus.Histogram
	suggestions        *prometheus.CounterVec
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Resume analyses by outcome.",
		}, []string{"outcome"}),
		extractionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Resume text extraction failures by reason.",
		}, []string{"reason"}),
		matchScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_score",
			Help:      "Distribution of resume match scores (0-100).",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		missingKeywords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "missing_keywords",
			Help:      "Number of missing keywords reported per analysis.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}),
		suggestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_total",
			Help:      "AI suggestion requests by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}

	r.registry.MustRegister(
		r.analyses,
		r.extractionFailures,
		r.matchScore,
		r.missingKeywords,
		r.suggestions,
	)

	return r
}

func (r *Recorder) ObserveAnalysis(score float64, missing int) {
	r.analyses.WithLabelValues(OutcomeSuccess).Inc()
	r.matchScore.Observe(score)
	r.missingKeywords.Observe(float64(missing))
}

func (r *Recorder) ObserveFailure(outcome string) {
	r.analyses.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveExtractionFailure(reason string) {
	r.extractionFailures.WithLabelValues(reason).Inc()
}

func (r *Recorder) ObserveSuggestion(kind, outcome string) {
	r.suggestions.WithLabelValues(kind, outcome).Inc()
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
