package schema

import (
	"reflect"
	"testing"
)

// TestTypeList_Normalization tests @type normalization into a slice
func TestTypeList_Normalization(t *testing.T) {
	if got := TypeList("Product"); !reflect.DeepEqual(got, []string{"Product"}) {
		t.Errorf("Expected [Product], got %v", got)
	}

	if got := TypeList([]any{"Organization", "LocalBusiness"}); !reflect.DeepEqual(got, []string{"Organization", "LocalBusiness"}) {
		t.Errorf("Expected both types in order, got %v", got)
	}

	if got := TypeList(""); got != nil {
		t.Errorf("Expected nil for empty string, got %v", got)
	}

	if got := TypeList(42); got != nil {
		t.Errorf("Expected nil for non-string value, got %v", got)
	}

	if got := TypeList([]any{"Article", 7, ""}); !reflect.DeepEqual(got, []string{"Article"}) {
		t.Errorf("Expected non-string and empty members dropped, got %v", got)
	}
}

// TestEntity_Has tests empty-value handling
func TestEntity_Has(t *testing.T) {
	e := Entity{Attrs: map[string]any{
		"name":   "Acme",
		"empty":  "",
		"list":   []any{},
		"items":  []any{"a"},
		"object": map[string]any{},
		"nilval": nil,
		"count":  0,
	}}

	tests := []struct {
		field string
		want  bool
	}{
		{"name", true},
		{"empty", false},
		{"list", false},
		{"items", true},
		{"object", false},
		{"nilval", false},
		{"count", true}, // zero is a real value, not absence
		{"missing", false},
	}

	for _, tt := range tests {
		if got := e.Has(tt.field); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.field, got, tt.want)
		}
	}
}

// TestEntity_IsDefinition tests bare-reference detection
func TestEntity_IsDefinition(t *testing.T) {
	bare := Entity{ID: "#org", Attrs: map[string]any{"@id": "#org"}}
	if bare.IsDefinition() {
		t.Error("Bare @id reference should not count as a definition")
	}

	typed := Entity{ID: "#org", Attrs: map[string]any{"@id": "#org", "@type": "Organization"}}
	if typed.IsDefinition() {
		t.Error("Reference with only metadata keys should not count as a definition")
	}

	defined := Entity{ID: "#org", Attrs: map[string]any{"@id": "#org", "@type": "Organization", "name": "Acme"}}
	if !defined.IsDefinition() {
		t.Error("Entity with a content attribute should count as a definition")
	}

	internal := Entity{Attrs: map[string]any{"_source": "microdata"}}
	if internal.IsDefinition() {
		t.Error("Underscore-prefixed attributes should not count as content")
	}
}

// TestTypesFound_FirstSeenOrder tests that the type list preserves
// document order and deduplicates
func TestTypesFound_FirstSeenOrder(t *testing.T) {
	entities := []Entity{
		{Types: []string{"WebSite"}},
		{Types: []string{"Organization", "WebSite"}},
		{Types: []string{"Product"}},
	}

	got := TypesFound(entities)
	want := []string{"WebSite", "Organization", "Product"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestGroupByType tests the multi-type bucket behavior
func TestGroupByType(t *testing.T) {
	entities := []Entity{
		{ID: "#a", Types: []string{"Organization", "LocalBusiness"}},
		{ID: "#b", Types: []string{"LocalBusiness"}},
	}

	grouped := GroupByType(entities)
	if len(grouped["Organization"]) != 1 {
		t.Errorf("Expected 1 Organization, got %d", len(grouped["Organization"]))
	}
	if len(grouped["LocalBusiness"]) != 2 {
		t.Errorf("Expected 2 LocalBusiness, got %d", len(grouped["LocalBusiness"]))
	}
}
