package rules

import (
	"testing"

	"github.com/schemalens/schema-audit/pkg/schema"
)

func contextOn(pageType string, entities ...schema.Entity) Context {
	ctx := contextFor(entities...)
	ctx.PageType = pageType
	return ctx
}

// TestMissingSchemas_ExpectedAbsent tests the per-page-type expectation
func TestMissingSchemas_ExpectedAbsent(t *testing.T) {
	e := newTestEngine(t)

	// A product page with no Product schema at all.
	fs := e.MissingSchemas(contextOn("product"))
	found := findByID(fs, "missing_schema_Product")
	if len(found) != 1 {
		t.Fatalf("Expected a missing Product finding, got %v", fs)
	}
	if found[0].SchemaType != "Product" {
		t.Errorf("Expected schemaType Product, got %s", found[0].SchemaType)
	}

	// With the schema present, the finding disappears.
	product := schema.Entity{Types: []string{"Product"}, Attrs: map[string]any{"name": "Widget"}}
	fs = e.MissingSchemas(contextOn("product", product))
	if len(findByID(fs, "missing_schema_Product")) != 0 {
		t.Error("Expected no missing Product finding when Product is present")
	}
}

// TestMissingSchemas_TypeEquivalence tests that subtypes satisfy expectations
func TestMissingSchemas_TypeEquivalence(t *testing.T) {
	e := newTestEngine(t)

	// The about page expects Organization; MedicalBusiness satisfies it.
	biz := schema.Entity{Types: []string{"MedicalBusiness"}, Attrs: map[string]any{"name": "Clinic"}}
	fs := e.MissingSchemas(contextOn("about", biz))
	if len(findByID(fs, "missing_schema_Organization")) != 0 {
		t.Error("Expected a Business subtype to satisfy the Organization expectation")
	}

	// The article page expects Article; BlogPosting satisfies it.
	post := schema.Entity{Types: []string{"BlogPosting"}, Attrs: map[string]any{"headline": "Hello"}}
	fs = e.MissingSchemas(contextOn("article", post))
	if len(findByID(fs, "missing_schema_Article")) != 0 {
		t.Error("Expected BlogPosting to satisfy the Article expectation")
	}
}

// TestMissingSchemas_UniversalOrganization tests the everywhere-check
func TestMissingSchemas_UniversalOrganization(t *testing.T) {
	e := newTestEngine(t)

	fs := e.MissingSchemas(contextOn("product"))
	if len(findByID(fs, "missing_organization")) != 1 {
		t.Error("Expected a missing_organization finding on a typed page")
	}

	// Not raised on generic pages.
	fs = e.MissingSchemas(contextOn("generic"))
	if len(findByID(fs, "missing_organization")) != 0 {
		t.Error("Expected no missing_organization finding on a generic page")
	}

	// A Business subtype silences it.
	biz := schema.Entity{Types: []string{"LocalBusiness"}, Attrs: map[string]any{"name": "Shop"}}
	fs = e.MissingSchemas(contextOn("product", biz))
	if len(findByID(fs, "missing_organization")) != 0 {
		t.Error("Expected LocalBusiness to satisfy the organization check")
	}
}

// TestMissingSchemas_WebsiteOnHomepage tests the homepage-only WebSite check
func TestMissingSchemas_WebsiteOnHomepage(t *testing.T) {
	e := newTestEngine(t)

	fs := e.MissingSchemas(contextOn("homepage"))
	if len(findByID(fs, "missing_website")) != 1 {
		t.Error("Expected missing_website on the homepage")
	}

	fs = e.MissingSchemas(contextOn("product"))
	if len(findByID(fs, "missing_website")) != 0 {
		t.Error("Expected no missing_website off the homepage")
	}
}

// TestMissingSchemas_Breadcrumb tests the inner-page breadcrumb check
func TestMissingSchemas_Breadcrumb(t *testing.T) {
	e := newTestEngine(t)

	fs := e.MissingSchemas(contextOn("product"))
	if len(findByID(fs, "missing_breadcrumb")) != 1 {
		t.Error("Expected missing_breadcrumb on an inner page")
	}

	for _, pt := range []string{"homepage", "generic"} {
		fs = e.MissingSchemas(contextOn(pt))
		if len(findByID(fs, "missing_breadcrumb")) != 0 {
			t.Errorf("Expected no breadcrumb finding on %s", pt)
		}
	}
}
