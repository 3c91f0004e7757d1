// Package rules evaluates entities against the knowledge base and the
// graph/identity/classification context, emitting findings. The engine is
// one generic evaluator driven by the requirement tables; there is no
// per-schema-type code path.
//
// Check groups are independently callable and order-independent with
// respect to each other. Within a group, emission order is stable (by
// entity, then by field) so reports are reproducible byte for byte.
package rules

import (
	"github.com/schemalens/schema-audit/pkg/entitygraph"
	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/identity"
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// Context carries everything one evaluation needs. All fields are
// read-only snapshots produced by earlier pipeline stages.
type Context struct {
	URL        string
	PageType   string
	Entities   []schema.Entity
	ByType     map[string][]schema.Entity
	TypesFound []string
	Graph      *entitygraph.Graph
	Identity   identity.Identity
	OpenGraph  map[string]string
}

// typesPresent returns the found types as a set for membership tests.
func (c Context) typesPresent() map[string]bool {
	set := make(map[string]bool, len(c.TypesFound))
	for _, t := range c.TypesFound {
		set[t] = true
	}
	return set
}

// Engine evaluates all check groups against a context.
type Engine struct {
	base *knowledge.Base
}

// NewEngine creates an engine over an immutable knowledge base.
func NewEngine(base *knowledge.Base) *Engine {
	return &Engine{base: base}
}

// Evaluate runs every check group and concatenates their findings in the
// fixed group order. No check raises on missing optional data; absence is
// the signal.
func (e *Engine) Evaluate(ctx Context) []findings.Finding {
	var out []findings.Finding
	out = append(out, e.Critical(ctx)...)
	out = append(out, e.Structural(ctx)...)
	out = append(out, e.Incomplete(ctx)...)
	out = append(out, e.MissingSchemas(ctx)...)
	out = append(out, e.Relationships(ctx)...)
	out = append(out, e.Opportunities(ctx)...)
	out = append(out, e.Trust(ctx)...)
	return out
}

// entityRef labels a finding's entity: the explicit id when present, the
// provenance path otherwise.
func entityRef(e schema.Entity) string {
	if e.ID != "" {
		return e.ID
	}
	return e.Provenance
}
