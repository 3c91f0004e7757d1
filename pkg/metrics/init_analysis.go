package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "schemaaudit_analyses_total",
			Help: "Total number of page analyses performed",
		},
		[]string{"page_type", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schemaaudit_analysis_duration_seconds",
			Help:    "Analysis duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)
}

func (r *Registry) initFindingMetrics() {
	r.FindingsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "schemaaudit_findings_total",
			Help: "Total findings emitted, by severity and category",
		},
		[]string{"severity", "category"},
	)

	r.SchemasPerPage = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schemaaudit_schemas_per_page",
			Help:    "Number of distinct schema types found per analyzed page",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	r.FindingsPerPage = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schemaaudit_findings_per_page",
			Help:    "Number of findings emitted per analyzed page",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	r.HealthTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "schemaaudit_health_total",
			Help: "Analyses by resulting health label",
		},
		[]string{"health"},
	)
}
