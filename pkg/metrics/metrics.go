package metrics

import (
	"time"

	"github.com/schemalens/schema-audit/pkg/findings"
)

// RecordAnalysis records a completed analysis with its duration
func (r *Registry) RecordAnalysis(pageType, status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(pageType, status).Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
}

// RecordFindings records the finding breakdown of one analysis
func (r *Registry) RecordFindings(fs []findings.Finding, schemaCount int, health string) {
	for _, f := range fs {
		r.FindingsTotal.WithLabelValues(string(f.Severity), string(f.Category)).Inc()
	}
	r.SchemasPerPage.Observe(float64(schemaCount))
	r.FindingsPerPage.Observe(float64(len(fs)))
	r.HealthTotal.WithLabelValues(health).Inc()
}
