package rules

import (
	"fmt"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// Incomplete flags missing recommended fields, top-level and nested. Each
// finding lands below the corresponding required-field finding for the
// same type: the priority is the type's base weight minus ten.
func (e *Engine) Incomplete(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		for _, t := range entity.Types {
			req, ok := e.base.RequirementFor(t)
			if !ok {
				continue
			}

			for _, field := range req.Recommended {
				if entity.Has(field) {
					continue
				}
				out = append(out, findings.Finding{
					ID:          fmt.Sprintf("missing_recommended_%s_%s", t, field),
					Title:       fmt.Sprintf("%s: consider adding %q", t, field),
					Description: fmt.Sprintf("The %s field is recommended for %s for the best presentation.", field, t),
					Severity:    findings.Medium,
					Category:    findings.Incomplete,
					Impact:      fmt.Sprintf("Better presentation in %s", richResultOr(req.RichResult, "search results")),
					Fix:         fmt.Sprintf("Add the %s field with a relevant value", field),
					SchemaType:  t,
					Field:       field,
					EntityID:    entity.ID,
					RichResult:  req.RichResult,
					Priority:    req.Priority - 10,
				})
			}

			out = append(out, checkNestedRecommended(entity, t, req.Nested)...)
		}
	}
	return out
}

// checkNestedRecommended flags missing recommended sub-fields of nested
// objects that are present. Parent fields are visited in sorted order for
// stable emission.
func checkNestedRecommended(entity schema.Entity, t string, nested map[string]knowledge.NestedRequirement) []findings.Finding {
	var out []findings.Finding
	for _, parent := range sortedKeys(nested) {
		recommended := nested[parent].Recommended
		if len(recommended) == 0 {
			continue
		}
		obj, ok := entity.Attrs[parent].(map[string]any)
		if !ok {
			continue
		}
		for _, sub := range recommended {
			if v, present := obj[sub]; present && !schema.IsEmpty(v) {
				continue
			}
			out = append(out, findings.Finding{
				ID:          fmt.Sprintf("nested_recommended_%s_%s_%s", t, parent, sub),
				Title:       fmt.Sprintf("%s.%s: consider adding %q", t, parent, sub),
				Description: fmt.Sprintf("The %s field inside %s is recommended for a complete presentation.", sub, parent),
				Severity:    findings.Low,
				Category:    findings.Incomplete,
				Impact:      "Richer presentation in rich results",
				Fix:         fmt.Sprintf("Add the %s field to the %s object", sub, parent),
				SchemaType:  t,
				Field:       parent + "." + sub,
				EntityID:    entity.ID,
				Priority:    50,
			})
		}
	}
	return out
}
