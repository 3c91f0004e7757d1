package rules

import (
	"fmt"
	"strings"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// Structural surfaces graph-consistency problems: duplicate identifiers,
// broken references, orphaned entities, multiple organizations without
// hierarchy, and an organization/website naming mismatch.
func (e *Engine) Structural(ctx Context) []findings.Finding {
	var out []findings.Finding
	out = append(out, ctx.Graph.Duplicates()...)
	out = append(out, ctx.Graph.BrokenRefs()...)
	out = append(out, ctx.Graph.Orphans()...)
	out = append(out, e.checkMultipleOrganizations(ctx)...)
	out = append(out, e.checkNameMismatch(ctx)...)
	return out
}

// checkMultipleOrganizations flags pages carrying several organization-like
// entities with no parentOrganization/subOrganization linkage between any
// of them.
func (e *Engine) checkMultipleOrganizations(ctx Context) []findings.Finding {
	var orgs []schema.Entity
	for _, entity := range ctx.Entities {
		if knowledge.CategoryOf(entity.Types) == knowledge.CategoryOrganization {
			orgs = append(orgs, entity)
		}
	}
	if len(orgs) <= 1 {
		return nil
	}

	for _, org := range orgs {
		if org.Has("parentOrganization") || org.Has("subOrganization") {
			return nil
		}
	}

	return []findings.Finding{{
		ID:          "multiple_orgs_no_hierarchy",
		Title:       "Multiple organizations without hierarchy",
		Description: fmt.Sprintf("Found %d organization entities with no parentOrganization/subOrganization link between them.", len(orgs)),
		Severity:    findings.Medium,
		Category:    findings.Structural,
		Impact:      "Search engines may be unsure which entity is the primary one",
		Fix:         "Declare parentOrganization/subOrganization relationships or remove redundant organizations",
		Priority:    65,
	}}
}

// checkNameMismatch notes when the Organization and WebSite names differ.
// Often intentional (brand vs product site), hence low severity.
func (e *Engine) checkNameMismatch(ctx Context) []findings.Finding {
	org := ctx.Identity.Organization
	site := ctx.Identity.Website
	if org == nil || site == nil {
		return nil
	}

	orgName := strings.TrimSpace(strings.ToLower(org.String("name")))
	siteName := strings.TrimSpace(strings.ToLower(site.String("name")))
	if orgName == "" || siteName == "" || orgName == siteName {
		return nil
	}

	return []findings.Finding{{
		ID:          "name_mismatch_org_website",
		Title:       "Name mismatch: Organization vs WebSite",
		Description: fmt.Sprintf("The organization name %q differs from the website name %q.", org.String("name"), site.String("name")),
		Severity:    findings.Low,
		Category:    findings.Structural,
		Impact:      "May blur the brand identity",
		Fix:         "Make the names consistent, or confirm the difference is intentional",
		Priority:    40,
	}}
}
