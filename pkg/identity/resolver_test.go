package identity

import (
	"testing"

	"github.com/schemalens/schema-audit/pkg/schema"
)

// TestResolve_AllSlots tests that each category fills its slot
func TestResolve_AllSlots(t *testing.T) {
	entities := []schema.Entity{
		{ID: "#org", Types: []string{"Organization"}, Attrs: map[string]any{"name": "Acme"}},
		{ID: "#site", Types: []string{"WebSite"}, Attrs: map[string]any{"name": "Acme Site"}},
		{ID: "#page", Types: []string{"WebPage"}, Attrs: map[string]any{"url": "https://acme.test/about"}},
		{ID: "#dana", Types: []string{"Person"}, Attrs: map[string]any{"name": "Dana"}},
	}

	id := Resolve(entities, "https://acme.test/about")
	if id.Organization == nil || id.Organization.ID != "#org" {
		t.Error("Expected organization slot to be filled")
	}
	if id.Website == nil || id.Website.ID != "#site" {
		t.Error("Expected website slot to be filled")
	}
	if id.Page == nil || id.Page.ID != "#page" {
		t.Error("Expected page slot to be filled")
	}
	if id.Author == nil || id.Author.ID != "#dana" {
		t.Error("Expected author slot to be filled")
	}
}

// TestResolve_FirstSeenWins tests the document-order tie-break
func TestResolve_FirstSeenWins(t *testing.T) {
	entities := []schema.Entity{
		{ID: "#first", Types: []string{"Organization"}, Attrs: map[string]any{"name": "First"}},
		{ID: "#second", Types: []string{"Organization"}, Attrs: map[string]any{"name": "Second"}},
	}

	id := Resolve(entities, "")
	if id.Organization == nil || id.Organization.ID != "#first" {
		t.Errorf("Expected the first organization to win")
	}
}

// TestResolve_MultiTypedEntityFillsBothSlots tests that an entity typed
// as both Organization and WebSite claims both slots
func TestResolve_MultiTypedEntityFillsBothSlots(t *testing.T) {
	entities := []schema.Entity{
		{ID: "#both", Types: []string{"Organization", "WebSite"}, Attrs: map[string]any{"name": "Acme"}},
	}

	id := Resolve(entities, "")
	if id.Organization == nil || id.Organization.ID != "#both" {
		t.Error("Expected the multi-typed entity to fill the organization slot")
	}
	if id.Website == nil || id.Website.ID != "#both" {
		t.Error("Expected the multi-typed entity to fill the website slot")
	}
}

// TestResolve_GraphMemberPrecedesBareBlock tests that an organization
// wrapped in an @graph container ahead of a standalone one is the one
// that wins the first-seen tie-break after flattening
func TestResolve_GraphMemberPrecedesBareBlock(t *testing.T) {
	linkedData := []any{
		map[string]any{
			"@graph": []any{
				map[string]any{"@id": "#wrapped", "@type": "Organization", "name": "Wrapped Org"},
			},
		},
		map[string]any{"@id": "#bare", "@type": "Organization", "name": "Bare Org"},
	}

	entities := schema.Flatten(linkedData, nil, nil, nil)
	id := Resolve(entities, "")
	if id.Organization == nil || id.Organization.ID != "#wrapped" {
		t.Errorf("Expected the graph-wrapped organization to win, got %+v", id.Organization)
	}
}

// TestResolve_PageURLPreference tests that a WebPage matching the page URL
// replaces an earlier one that does not
func TestResolve_PageURLPreference(t *testing.T) {
	entities := []schema.Entity{
		{ID: "#other", Types: []string{"WebPage"}, Attrs: map[string]any{"url": "https://acme.test/other"}},
		{ID: "#this", Types: []string{"WebPage"}, Attrs: map[string]any{"url": "https://acme.test/about"}},
	}

	id := Resolve(entities, "https://acme.test/about")
	if id.Page == nil || id.Page.ID != "#this" {
		t.Errorf("Expected the URL-matching page to win, got %+v", id.Page)
	}
}

// TestResolve_EmptySlots tests nil slots when no category matches
func TestResolve_EmptySlots(t *testing.T) {
	entities := []schema.Entity{
		{Types: []string{"Product"}, Attrs: map[string]any{"name": "Widget"}},
	}

	id := Resolve(entities, "https://shop.test/product/widget")
	if id.Organization != nil || id.Website != nil || id.Page != nil || id.Author != nil {
		t.Error("Expected all slots to be nil for a lone Product")
	}
}

// TestResolve_BusinessCountsAsOrganization tests category substring matching
func TestResolve_BusinessCountsAsOrganization(t *testing.T) {
	entities := []schema.Entity{
		{ID: "#biz", Types: []string{"LocalBusiness"}, Attrs: map[string]any{"name": "Corner Shop"}},
	}

	id := Resolve(entities, "")
	if id.Organization == nil || id.Organization.ID != "#biz" {
		t.Error("Expected LocalBusiness to fill the organization slot")
	}
}
