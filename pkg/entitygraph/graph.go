// Package entitygraph builds the cross-entity reference graph and surfaces
// its consistency problems: duplicate identifiers, broken references, and
// orphaned entities. A broken reference is a first-class detectable
// condition here, not an error.
package entitygraph

import (
	"strings"

	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// edgeFields are the relationship-bearing attributes edges are built from.
// The list and its order are fixed: emission order of structural findings
// follows it.
var edgeFields = []string{
	"isPartOf",
	"publisher",
	"author",
	"about",
	"provider",
	"organizer",
	"performer",
	"itemReviewed",
	"parentOrganization",
	"subOrganization",
	"memberOf",
}

// refFields extends edgeFields with reference attributes that point at
// entities without forming graph edges; broken-reference detection covers
// these too.
var refFields = append(append([]string{}, edgeFields...), "mainEntity", "mainEntityOfPage")

// Node is one entity projected into the graph.
type Node struct {
	ID       string   `json:"id"`
	Types    []string `json:"types"`
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category"`
}

// Edge is one directed reference between entities. To may name an id that
// does not resolve; resolvability is checked separately.
type Edge struct {
	From     string `json:"from"`
	Relation string `json:"relation"`
	To       string `json:"to"`
}

// Graph is the relationship graph over one entity set.
type Graph struct {
	entities []schema.Entity
	nodes    []Node
	edges    []Edge

	// occurrences groups entities by explicit identifier, in document order
	occurrences map[string][]schema.Entity
	// idOrder keeps identifier first-seen order for deterministic iteration
	idOrder []string
	// targets is the set of ids some edge points at
	targets map[string]bool
}

// Build constructs the graph. Pure: the entity slice is read, never
// mutated.
func Build(entities []schema.Entity) *Graph {
	g := &Graph{
		entities:    entities,
		occurrences: make(map[string][]schema.Entity),
		targets:     make(map[string]bool),
	}

	for _, e := range entities {
		g.nodes = append(g.nodes, Node{
			ID:       nodeID(e),
			Types:    e.Types,
			Name:     e.String("name"),
			Category: string(knowledge.CategoryOf(e.Types)),
		})
		if e.ID != "" {
			if _, seen := g.occurrences[e.ID]; !seen {
				g.idOrder = append(g.idOrder, e.ID)
			}
			g.occurrences[e.ID] = append(g.occurrences[e.ID], e)
		}
	}

	for _, e := range entities {
		from := nodeID(e)
		for _, field := range edgeFields {
			for _, target := range referenceTargets(e.Attrs[field]) {
				g.edges = append(g.edges, Edge{From: from, Relation: field, To: target})
				g.targets[target] = true
			}
		}
	}
	return g
}

// Nodes returns the graph nodes in document order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the graph edges in document-then-field order.
func (g *Graph) Edges() []Edge { return g.edges }

// Resolves reports whether an identifier names a known entity.
func (g *Graph) Resolves(id string) bool {
	_, ok := g.occurrences[id]
	return ok
}

// nodeID keys a node by its explicit identifier when present, falling back
// to the provenance path so anonymous entities still appear in the graph.
func nodeID(e schema.Entity) string {
	if e.ID != "" {
		return e.ID
	}
	return e.Provenance
}

// referenceTargets extracts edge targets from a raw attribute value. A
// nested object contributes its @id; so does each object in a sequence. A
// plain string is a target only when it is a local fragment reference;
// external string URLs are not edges.
func referenceTargets(v any) []string {
	var targets []string
	for _, item := range schema.AsList(v) {
		switch x := item.(type) {
		case map[string]any:
			if id, ok := x["@id"].(string); ok && id != "" {
				targets = append(targets, id)
			}
		case string:
			if strings.HasPrefix(x, "#") {
				targets = append(targets, x)
			}
		}
	}
	return targets
}
