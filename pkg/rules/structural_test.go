package rules

import (
	"testing"

	"github.com/schemalens/schema-audit/pkg/entitygraph"
	"github.com/schemalens/schema-audit/pkg/identity"
	"github.com/schemalens/schema-audit/pkg/schema"
)

func structuralContext(entities ...schema.Entity) Context {
	ctx := contextFor(entities...)
	ctx.Graph = entitygraph.Build(entities)
	ctx.Identity = identity.Resolve(entities, ctx.URL)
	return ctx
}

// TestStructural_MultipleOrgs tests the hierarchy check
func TestStructural_MultipleOrgs(t *testing.T) {
	e := newTestEngine(t)

	flat := structuralContext(
		schema.Entity{ID: "#a", Types: []string{"Organization"}, Attrs: map[string]any{"name": "Acme"}},
		schema.Entity{ID: "#b", Types: []string{"LocalBusiness"}, Attrs: map[string]any{"name": "Acme TLV"}},
	)
	fs := e.Structural(flat)
	if len(findByID(fs, "multiple_orgs_no_hierarchy")) != 1 {
		t.Error("Expected multiple_orgs_no_hierarchy for two unlinked organizations")
	}

	linked := structuralContext(
		schema.Entity{ID: "#a", Types: []string{"Organization"}, Attrs: map[string]any{"name": "Acme"}},
		schema.Entity{ID: "#b", Types: []string{"LocalBusiness"}, Attrs: map[string]any{
			"name":               "Acme TLV",
			"parentOrganization": map[string]any{"@id": "#a"},
		}},
	)
	fs = e.Structural(linked)
	if len(findByID(fs, "multiple_orgs_no_hierarchy")) != 0 {
		t.Error("Expected no finding when a hierarchy link exists")
	}

	single := structuralContext(
		schema.Entity{ID: "#a", Types: []string{"Organization"}, Attrs: map[string]any{"name": "Acme"}},
	)
	fs = e.Structural(single)
	if len(findByID(fs, "multiple_orgs_no_hierarchy")) != 0 {
		t.Error("Expected no finding for a single organization")
	}
}

// TestStructural_NameMismatch tests the org/site name comparison
func TestStructural_NameMismatch(t *testing.T) {
	e := newTestEngine(t)

	mismatched := structuralContext(
		schema.Entity{ID: "#org", Types: []string{"Organization"}, Attrs: map[string]any{"name": "Acme Corp"}},
		schema.Entity{ID: "#site", Types: []string{"WebSite"}, Attrs: map[string]any{"name": "Widget World"}},
	)
	fs := e.Structural(mismatched)
	if len(findByID(fs, "name_mismatch_org_website")) != 1 {
		t.Error("Expected name_mismatch_org_website")
	}

	// Case and whitespace differences do not count as a mismatch.
	consistent := structuralContext(
		schema.Entity{ID: "#org", Types: []string{"Organization"}, Attrs: map[string]any{"name": "Acme Corp"}},
		schema.Entity{ID: "#site", Types: []string{"WebSite"}, Attrs: map[string]any{"name": "  acme corp "}},
	)
	fs = e.Structural(consistent)
	if len(findByID(fs, "name_mismatch_org_website")) != 0 {
		t.Error("Expected no mismatch finding for case/space differences")
	}
}

// TestIncomplete_RecommendedFields tests the recommended-field sweep
func TestIncomplete_RecommendedFields(t *testing.T) {
	e := newTestEngine(t)
	product := schema.Entity{Types: []string{"Product"}, Attrs: map[string]any{"name": "Widget"}}

	fs := e.Incomplete(contextFor(product))
	if len(findByID(fs, "missing_recommended_Product_image")) != 1 {
		t.Error("Expected a recommended-image finding")
	}
	if len(findByID(fs, "missing_recommended_Product_offers")) != 1 {
		t.Error("Expected a recommended-offers finding")
	}
	if len(findByID(fs, "missing_recommended_Product_name")) != 0 {
		t.Error("Recommended checks must not cover required fields that exist")
	}
}

// TestIncomplete_NestedRecommended tests sub-field recommendations on
// present nested objects
func TestIncomplete_NestedRecommended(t *testing.T) {
	e := newTestEngine(t)
	product := schema.Entity{Types: []string{"Product"}, Attrs: map[string]any{
		"name": "Widget",
		"offers": map[string]any{
			"price":         "99.99",
			"priceCurrency": "USD",
			"availability":  "https://schema.org/InStock",
		},
	}}

	fs := e.Incomplete(contextFor(product))
	if len(findByID(fs, "nested_recommended_Product_offers_priceValidUntil")) != 1 {
		t.Error("Expected a nested recommendation for offers.priceValidUntil")
	}
}
