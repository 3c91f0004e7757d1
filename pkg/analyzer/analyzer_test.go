package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/report"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(nil)
	require.NoError(t, err)
	return a
}

func findInReport(rep report.Report, id string) []findings.Finding {
	var out []findings.Finding
	for _, bucket := range [][]findings.Finding{
		rep.Recommendations.Critical,
		rep.Recommendations.High,
		rep.Recommendations.Medium,
		rep.Recommendations.Low,
	} {
		for _, f := range bucket {
			if f.ID == id {
				out = append(out, f)
			}
		}
	}
	return out
}

// TestAnalyze_BareProductPage walks the sparse-product scenario end to end
func TestAnalyze_BareProductPage(t *testing.T) {
	a := newTestAnalyzer(t)

	rep, err := a.Analyze(&Input{
		URL: "https://shop.test/product/widget",
		LinkedData: []any{
			map[string]any{"@type": "Product", "name": "Widget"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "product", rep.PageType)
	assert.Equal(t, []string{"Product"}, rep.SchemasFound)

	// The only required Product field, name, is present.
	assert.Empty(t, findInReport(rep, "missing_required_Product_name"))
	assert.Empty(t, rep.Recommendations.Critical)

	// Every recommended field is missing.
	for _, field := range []string{"image", "description", "brand", "offers"} {
		assert.Len(t, findInReport(rep, "missing_recommended_Product_"+field), 1,
			"expected a recommendation for %s", field)
	}

	// Enough medium findings accumulate to push past good.
	assert.Equal(t, report.HealthNeedsWork, rep.Health)
}

// TestAnalyze_EmptyInput tests the no-structured-data path
func TestAnalyze_EmptyInput(t *testing.T) {
	a := newTestAnalyzer(t)

	rep, err := a.Analyze(&Input{URL: "https://empty.test/xyzzy/page"})
	require.NoError(t, err)

	assert.Empty(t, rep.SchemasFound)
	assert.NotEqual(t, report.HealthBroken, rep.Health,
		"no critical finding exists, so broken must not be forced")

	require.NotNil(t, rep.Score)
	assert.LessOrEqual(t, rep.Score.Score, 60)
	assert.Contains(t, []string{"D", "F"}, rep.Score.Grade)
}

// TestAnalyze_InvalidInput tests the caller-contract failure mode
func TestAnalyze_InvalidInput(t *testing.T) {
	a := newTestAnalyzer(t)

	_, err := a.Analyze(&Input{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = a.Analyze(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = a.Analyze(&Input{URL: "not a url at all"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestAnalyze_MalformedMarkupIsNotAnError tests that broken markup yields
// findings, never an error
func TestAnalyze_MalformedMarkupIsNotAnError(t *testing.T) {
	a := newTestAnalyzer(t)

	rep, err := a.Analyze(&Input{
		URL: "https://news.test/blog/broken",
		LinkedData: []any{
			"this block is not even an object",
			map[string]any{"name": "no type here"},
			map[string]any{"@type": "Artical", "headline": "typo"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, findInReport(rep, "missing_type"), 1)
	assert.Len(t, findInReport(rep, "typo_in_type"), 1)
	assert.Equal(t, report.HealthBroken, rep.Health)
}

// TestAnalyze_DuplicateDefinitions tests the duplicate-id scenario through
// the full pipeline, bare references excluded
func TestAnalyze_DuplicateDefinitions(t *testing.T) {
	a := newTestAnalyzer(t)

	rep, err := a.Analyze(&Input{
		URL: "https://acme.test/about",
		LinkedData: []any{
			map[string]any{"@id": "#org", "@type": "Organization", "name": "Acme"},
			map[string]any{"@id": "#org", "@type": "Organization", "name": "Acme Inc"},
			map[string]any{"@id": "#org"},
		},
	})
	require.NoError(t, err)

	dups := findInReport(rep, "duplicate_id")
	require.Len(t, dups, 1)
	assert.Equal(t, "#org", dups[0].EntityID)
}

// TestAnalyze_GraphAndIdentityInReport tests the report side channels
func TestAnalyze_GraphAndIdentityInReport(t *testing.T) {
	a := newTestAnalyzer(t)

	rep, err := a.Analyze(&Input{
		URL: "https://acme.test/blog/launch",
		LinkedData: []any{
			map[string]any{"@id": "#org", "@type": "Organization", "name": "Acme",
				"url": "https://acme.test"},
			map[string]any{"@type": "Article", "headline": "Launch",
				"datePublished": "2024-05-01",
				"publisher":     map[string]any{"@id": "#org"},
			},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, rep.Identity.Organization)
	assert.Equal(t, "#org", rep.Identity.Organization.ID)
	assert.Equal(t, "Acme", rep.Identity.Organization.Name)

	assert.Len(t, rep.Graph.Entities, 2)
	require.Len(t, rep.Graph.Connections, 1)
	assert.Equal(t, "publisher", rep.Graph.Connections[0].Relation)
	assert.Equal(t, "#org", rep.Graph.Connections[0].To)

	// The publisher reference resolves; no broken-ref finding.
	assert.Empty(t, findInReport(rep, "broken_ref_publisher"))
}

// TestAnalyze_PriorityOrdering tests the non-increasing priority contract
// inside each severity bucket
func TestAnalyze_PriorityOrdering(t *testing.T) {
	a := newTestAnalyzer(t)

	rep, err := a.Analyze(&Input{
		URL: "https://shop.test/product/widget",
		LinkedData: []any{
			map[string]any{"@type": "Product"},
			map[string]any{"@type": "Organisation", "name": "Acme"},
		},
	})
	require.NoError(t, err)

	for _, bucket := range [][]findings.Finding{
		rep.Recommendations.Critical,
		rep.Recommendations.High,
		rep.Recommendations.Medium,
		rep.Recommendations.Low,
	} {
		for i := 1; i < len(bucket); i++ {
			assert.GreaterOrEqual(t, bucket[i-1].Priority, bucket[i].Priority,
				"bucket out of order at %s -> %s", bucket[i-1].ID, bucket[i].ID)
		}
	}
}

// TestAnalyze_ReportIsSerializable tests that the full report marshals
func TestAnalyze_ReportIsSerializable(t *testing.T) {
	a := newTestAnalyzer(t)

	rep, err := a.Analyze(&Input{
		URL:        "https://acme.test/",
		LinkedData: []any{map[string]any{"@type": "WebSite", "name": "Acme"}},
		OpenGraph:  map[string]string{"og:title": "Acme"},
	})
	require.NoError(t, err)

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var round map[string]any
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "homepage", round["pageType"])
}
