package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/schemalens/schema-audit/pkg/findings"
)

func counterTotal(families []*dto.MetricFamily, name string) (float64, bool) {
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total, true
	}
	return 0, false
}

// TestNewRegistry tests that all metrics initialize
func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.AnalysesTotal == nil || r.AnalysisDuration == nil {
		t.Fatal("Expected analysis metrics to be initialized")
	}
	if r.FindingsTotal == nil || r.SchemasPerPage == nil || r.FindingsPerPage == nil || r.HealthTotal == nil {
		t.Fatal("Expected finding metrics to be initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Fatal("Expected an underlying prometheus registry")
	}
}

// TestRecordAnalysis tests the analysis counter and histogram
func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()
	r.RecordAnalysis("product", "ok", 5*time.Millisecond)
	r.RecordAnalysis("product", "ok", 7*time.Millisecond)
	r.RecordAnalysis("homepage", "invalid_input", 0)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	total, found := counterTotal(families, "schemaaudit_analyses_total")
	if !found {
		t.Fatal("Expected the analyses counter to be registered")
	}
	if total != 3 {
		t.Errorf("Expected 3 analyses recorded, got %v", total)
	}
}

// TestRecordFindings tests the per-finding breakdown
func TestRecordFindings(t *testing.T) {
	r := NewRegistry()
	fs := []findings.Finding{
		{ID: "a", Severity: findings.Critical, Category: findings.Broken},
		{ID: "b", Severity: findings.Low, Category: findings.Opportunity},
	}
	r.RecordFindings(fs, 2, "broken")

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	findingsTotal, found := counterTotal(families, "schemaaudit_findings_total")
	if !found {
		t.Fatal("Expected the findings counter to be registered")
	}
	if findingsTotal != 2 {
		t.Errorf("Expected 2 findings recorded, got %v", findingsTotal)
	}
	healthTotal, _ := counterTotal(families, "schemaaudit_health_total")
	if healthTotal != 1 {
		t.Errorf("Expected 1 health observation, got %v", healthTotal)
	}
}

// TestDefaultRegistry tests the singleton
func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("Expected DefaultRegistry to return the same instance")
	}
}
