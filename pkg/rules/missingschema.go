package rules

import (
	"fmt"
	"strings"

	"github.com/schemalens/schema-audit/pkg/findings"
)

// MissingSchemas compares the types found against the classified page
// type's expected and optional schema lists, then applies the universal
// checks that hold for most pages.
func (e *Engine) MissingSchemas(ctx Context) []findings.Finding {
	var out []findings.Finding
	present := ctx.typesPresent()

	rule, ok := e.base.PageTypeRuleFor(ctx.PageType)
	if ok {
		for _, expected := range rule.ExpectedSchemas {
			if present[expected] || satisfiedByRelated(expected, ctx.TypesFound) {
				continue
			}
			req, _ := e.base.RequirementFor(expected)
			priority := req.Priority
			if priority == 0 {
				priority = 70
			}
			out = append(out, findings.Finding{
				ID:          "missing_schema_" + expected,
				Title:       fmt.Sprintf("Missing %s schema", expected),
				Description: fmt.Sprintf("A page of type %q is expected to carry a %s schema.", ctx.PageType, expected),
				Severity:    findings.High,
				Category:    findings.MissingSchema,
				Impact:      richResultOr(req.RichResult, "content recognition by search engines"),
				Fix:         fmt.Sprintf("Add a %s schema with its required fields: %s", expected, strings.Join(req.Required, ", ")),
				SchemaType:  expected,
				RichResult:  req.RichResult,
				Priority:    priority,
			})
		}

		for _, optional := range rule.OptionalSchemas {
			if present[optional] {
				continue
			}
			req, _ := e.base.RequirementFor(optional)
			if req.RichResult == "" {
				// Only suggest optional schemas that unlock a rich result.
				continue
			}
			priority := req.Priority
			if priority == 0 {
				priority = 50
			}
			out = append(out, findings.Finding{
				ID:          "optional_schema_" + optional,
				Title:       fmt.Sprintf("Opportunity: %s schema", optional),
				Description: fmt.Sprintf("A %s schema could improve the presentation of this page type.", optional),
				Severity:    findings.Low,
				Category:    findings.Opportunity,
				Impact:      req.RichResult,
				Fix:         fmt.Sprintf("Consider adding a %s schema", optional),
				SchemaType:  optional,
				RichResult:  req.RichResult,
				Priority:    priority - 20,
			})
		}
	}

	out = append(out, e.checkUniversalSchemas(ctx, present)...)
	return out
}

// satisfiedByRelated applies the type-equivalence policy: a Business
// subtype satisfies an expected Organization, and NewsArticle/BlogPosting
// satisfy an expected Article. Consulted only for expected schemas.
func satisfiedByRelated(expected string, typesFound []string) bool {
	switch expected {
	case "Organization":
		for _, t := range typesFound {
			if strings.Contains(t, "Organization") || strings.Contains(t, "Business") {
				return true
			}
		}
	case "Article":
		for _, t := range typesFound {
			if t == "NewsArticle" || t == "BlogPosting" {
				return true
			}
		}
	}
	return false
}

// checkUniversalSchemas covers schemas that should exist on most pages
// regardless of archetype: Organization everywhere meaningful, WebSite on
// the homepage, BreadcrumbList on inner pages.
func (e *Engine) checkUniversalSchemas(ctx Context, present map[string]bool) []findings.Finding {
	var out []findings.Finding

	hasOrg := false
	for _, t := range ctx.TypesFound {
		if strings.Contains(t, "Organization") || strings.Contains(t, "Business") {
			hasOrg = true
			break
		}
	}
	if !hasOrg && ctx.PageType != "generic" {
		out = append(out, findings.Finding{
			ID:          "missing_organization",
			Title:       "Missing Organization schema",
			Description: "An Organization schema is fundamental for brand recognition by search engines.",
			Severity:    findings.Medium,
			Category:    findings.MissingSchema,
			Impact:      "Knowledge Panel, trust signals",
			Fix:         "Add an Organization schema with name, logo, url, sameAs",
			SchemaType:  "Organization",
			RichResult:  "Knowledge Panel",
			Priority:    80,
		})
	}

	if !present["WebSite"] && ctx.PageType == "homepage" {
		out = append(out, findings.Finding{
			ID:          "missing_website",
			Title:       "Missing WebSite schema",
			Description: "A WebSite schema enables the sitelinks search box in search results.",
			Severity:    findings.Medium,
			Category:    findings.MissingSchema,
			Impact:      "Sitelinks Search Box",
			Fix:         "Add a WebSite schema with name, url, and a SearchAction potentialAction",
			SchemaType:  "WebSite",
			RichResult:  "Sitelinks Search Box",
			Priority:    75,
		})
	}

	if !present["BreadcrumbList"] && ctx.PageType != "homepage" && ctx.PageType != "generic" {
		out = append(out, findings.Finding{
			ID:          "missing_breadcrumb",
			Title:       "Missing BreadcrumbList schema",
			Description: "A BreadcrumbList shows the navigation path in search results.",
			Severity:    findings.Low,
			Category:    findings.MissingSchema,
			Impact:      "Breadcrumb trail in results",
			Fix:         "Add a BreadcrumbList schema with itemListElement",
			SchemaType:  "BreadcrumbList",
			RichResult:  "Breadcrumb Trail",
			Priority:    65,
		})
	}

	return out
}
