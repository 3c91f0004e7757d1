package entitygraph

import (
	"fmt"
	"strings"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// importantCategories are the entity categories whose disconnection from
// the graph is worth flagging.
var importantCategories = map[knowledge.EntityCategory]bool{
	knowledge.CategoryOrganization: true,
	knowledge.CategoryPerson:       true,
	knowledge.CategoryWebsite:      true,
}

// Duplicates flags identifiers defined more than once. Only definitions
// count: an occurrence carrying nothing but metadata is a bare reference
// and is legal any number of times.
func (g *Graph) Duplicates() []findings.Finding {
	var out []findings.Finding
	for _, id := range g.idOrder {
		occurrences := g.occurrences[id]

		var definitions []schema.Entity
		for _, e := range occurrences {
			if e.IsDefinition() {
				definitions = append(definitions, e)
			}
		}
		if len(definitions) <= 1 {
			continue
		}

		paths := make([]string, len(definitions))
		for i, e := range definitions {
			paths[i] = e.Provenance
		}
		schemaType := ""
		if len(definitions[0].Types) > 0 {
			schemaType = definitions[0].Types[0]
		}

		out = append(out, findings.Finding{
			ID:    "duplicate_id",
			Title: fmt.Sprintf("Duplicate @id: %s", truncate(id, 50)),
			Description: fmt.Sprintf("The same @id is defined %d times with content (%s). Search engines may merge or ignore the conflicting entities.",
				len(definitions), strings.Join(paths, ", ")),
			Severity:   findings.High,
			Category:   findings.Structural,
			Impact:     "Search engines may mix up the entities or drop them entirely",
			Fix:        "Merge the definitions into one entity, or give each entity a unique @id",
			SchemaType: schemaType,
			EntityID:   id,
			Priority:   90,
		})
	}
	return out
}

// BrokenRefs flags local references that resolve to nothing. Absolute
// external links are left alone: they point outside the document on
// purpose.
func (g *Graph) BrokenRefs() []findings.Finding {
	var out []findings.Finding
	for _, e := range g.entities {
		for _, field := range refFields {
			obj, ok := e.Attrs[field].(map[string]any)
			if !ok {
				continue
			}
			refID, ok := obj["@id"].(string)
			if !ok || refID == "" {
				continue
			}
			if g.Resolves(refID) || strings.HasPrefix(refID, "http") {
				continue
			}
			out = append(out, findings.Finding{
				ID:    "broken_ref_" + field,
				Title: fmt.Sprintf("Broken reference: %s", field),
				Description: fmt.Sprintf("The %s field references @id %q, which is not defined anywhere in the page's structured data.",
					field, refID),
				Severity: findings.High,
				Category: findings.Structural,
				Impact:   "The relationship between the entities will not be recognized",
				Fix:      fmt.Sprintf("Define an entity with @id %q or remove the reference", refID),
				Field:    field,
				EntityID: e.ID,
				Priority: 85,
			})
		}
	}
	return out
}

// Orphans flags important identified entities that neither receive nor
// emit any relationship edge. Anonymous entities are skipped: without an
// identifier nothing could reference them anyway.
func (g *Graph) Orphans() []findings.Finding {
	var out []findings.Finding
	for _, e := range g.entities {
		if e.ID == "" {
			continue
		}
		category := knowledge.CategoryOf(e.Types)
		if !importantCategories[category] {
			continue
		}
		if g.targets[e.ID] {
			continue
		}
		if hasOutgoing(e) {
			continue
		}

		schemaType := ""
		if len(e.Types) > 0 {
			schemaType = e.Types[0]
		}
		out = append(out, findings.Finding{
			ID:          "orphaned_entity",
			Title:       fmt.Sprintf("Disconnected entity: %s", schemaType),
			Description: fmt.Sprintf("Entity %s is not linked to any other entity in the graph.", e.ID),
			Severity:    findings.Medium,
			Category:    findings.Structural,
			Impact:      "Search engines may not understand how the entities relate",
			Fix:         "Connect the entity through fields like publisher, author, or isPartOf",
			SchemaType:  schemaType,
			EntityID:    e.ID,
			Priority:    70,
		})
	}
	return out
}

func hasOutgoing(e schema.Entity) bool {
	for _, field := range edgeFields {
		if e.Has(field) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
