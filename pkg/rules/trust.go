package rules

import (
	"fmt"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// Trust evaluates E-E-A-T signals: how well the organization and the
// author are anchored to authoritative external profiles.
func (e *Engine) Trust(ctx Context) []findings.Finding {
	var out []findings.Finding

	if org := ctx.Identity.Organization; org != nil {
		out = append(out, e.checkOrgAuthority(*org)...)
		out = append(out, checkContactInfo(*org)...)
	}
	if author := ctx.Identity.Author; author != nil {
		out = append(out, checkAuthorAuthority(*author)...)
	}

	return out
}

func (e *Engine) checkOrgAuthority(org schema.Entity) []findings.Finding {
	var out []findings.Finding
	links := schema.AsList(org.Attrs["sameAs"])

	seen := map[string]bool{}
	weight := 0
	for _, link := range links {
		url, ok := link.(string)
		if !ok {
			continue
		}
		platform, found := e.base.PlatformFor(url)
		if !found || seen[platform.Name] {
			continue
		}
		seen[platform.Name] = true
		weight += platform.Weight
	}

	if !seen["Wikidata"] {
		out = append(out, findings.Finding{
			ID:          "eeat_no_wikidata",
			Title:       "Organization not linked to Wikidata",
			Description: "A Wikidata item is the strongest entity anchor a search engine can resolve an organization against.",
			Severity:    findings.Medium,
			Category:    findings.Opportunity,
			Impact:      "Knowledge Panel, entity disambiguation",
			Fix:         "Create or claim a Wikidata item and add it to the organization's sameAs",
			SchemaType:  "Organization",
			Field:       "sameAs",
			EntityID:    entityRef(org),
			Priority:    80,
		})
	} else if !seen["Wikipedia"] {
		out = append(out, findings.Finding{
			ID:          "eeat_no_wikipedia",
			Title:       "Organization not linked to Wikipedia",
			Description: "The organization has a Wikidata item but no Wikipedia article in sameAs.",
			Severity:    findings.Low,
			Category:    findings.Opportunity,
			Impact:      "Knowledge Panel completeness",
			Fix:         "Add the Wikipedia article URL to sameAs if one exists",
			SchemaType:  "Organization",
			Field:       "sameAs",
			EntityID:    entityRef(org),
			Priority:    50,
		})
	}

	if !seen["LinkedIn"] {
		out = append(out, findings.Finding{
			ID:          "eeat_no_linkedin",
			Title:       "Organization not linked to LinkedIn",
			Description: "A LinkedIn company page is a common corroborating signal for organization identity.",
			Severity:    findings.Low,
			Category:    findings.Opportunity,
			Impact:      "Organization trust signals",
			Fix:         "Add the LinkedIn company page URL to sameAs",
			SchemaType:  "Organization",
			Field:       "sameAs",
			EntityID:    entityRef(org),
			Priority:    55,
		})
	}

	if len(seen) < 3 {
		out = append(out, findings.Finding{
			ID:          "eeat_low_social",
			Title:       "Few authoritative profiles linked",
			Description: fmt.Sprintf("Only %d recognized platform(s) in sameAs, authority weight %d. Three or more corroborating profiles strengthen entity trust.", len(seen), weight),
			Severity:    findings.Low,
			Category:    findings.Opportunity,
			Impact:      "Entity corroboration",
			Fix:         "Add more official profiles (Wikidata, LinkedIn, Crunchbase, social platforms) to sameAs",
			SchemaType:  "Organization",
			Field:       "sameAs",
			EntityID:    entityRef(org),
			Priority:    45,
		})
	}

	return out
}

func checkContactInfo(org schema.Entity) []findings.Finding {
	if org.Has("telephone") || org.Has("email") || org.Has("contactPoint") {
		return nil
	}
	return []findings.Finding{{
		ID:          "eeat_no_contact",
		Title:       "Organization without contact information",
		Description: "The organization exposes no telephone, email, or contactPoint. Reachability is a baseline trust signal.",
		Severity:    findings.Low,
		Category:    findings.Opportunity,
		Impact:      "Organization trust signals",
		Fix:         "Add telephone, email, or a contactPoint to the Organization schema",
		SchemaType:  "Organization",
		EntityID:    entityRef(org),
		Priority:    50,
	}}
}

func checkAuthorAuthority(author schema.Entity) []findings.Finding {
	var out []findings.Finding

	if !author.Has("sameAs") {
		out = append(out, findings.Finding{
			ID:          "author_no_sameas",
			Title:       "Author without sameAs profiles",
			Description: fmt.Sprintf("Author %q links to no external profiles, so expertise cannot be verified.", nameOf(author)),
			Severity:    findings.Medium,
			Category:    findings.Opportunity,
			Impact:      "Author E-E-A-T signals",
			Fix:         "Add sameAs links to the author's LinkedIn, Twitter, or personal site",
			SchemaType:  "Person",
			Field:       "sameAs",
			EntityID:    entityRef(author),
			Priority:    65,
		})
	}

	if !author.Has("jobTitle") && !author.Has("description") {
		out = append(out, findings.Finding{
			ID:          "author_no_credentials",
			Title:       "Author without credentials",
			Description: "The author has neither jobTitle nor description establishing expertise.",
			Severity:    findings.Low,
			Category:    findings.Opportunity,
			Impact:      "Author E-E-A-T signals",
			Fix:         "Add jobTitle and a short bio description to the author",
			SchemaType:  "Person",
			EntityID:    entityRef(author),
			Priority:    55,
		})
	}

	return out
}
