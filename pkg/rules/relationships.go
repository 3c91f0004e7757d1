package rules

import (
	"fmt"
	"strings"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/schema"
)

var articleTypes = []string{"Article", "NewsArticle", "BlogPosting"}

// Relationships validates the linkage between content entities and the
// people and organizations behind them: article authorship, publisher
// attribution, and product branding.
func (e *Engine) Relationships(ctx Context) []findings.Finding {
	var out []findings.Finding

	for _, t := range articleTypes {
		for _, article := range ctx.ByType[t] {
			out = append(out, checkAuthorship(article, t)...)
			out = append(out, checkPublisher(article, t)...)
		}
	}

	for _, product := range ctx.ByType["Product"] {
		if !product.Has("brand") {
			out = append(out, findings.Finding{
				ID:          "product_no_brand",
				Title:       "Product without brand",
				Description: fmt.Sprintf("Product %q has no brand. Brand connects the product to your organization.", nameOf(product)),
				Severity:    findings.Medium,
				Category:    findings.Relationships,
				Impact:      "Brand association in product results",
				Fix:         "Add a brand field referencing your Organization",
				SchemaType:  "Product",
				Field:       "brand",
				EntityID:    entityRef(product),
				Priority:    70,
			})
		}
	}

	return out
}

func checkAuthorship(article schema.Entity, t string) []findings.Finding {
	var out []findings.Finding
	author, ok := article.Attrs["author"]
	if !ok {
		return nil
	}

	switch a := author.(type) {
	case map[string]any:
		if _, hasType := a["@type"]; !hasType {
			out = append(out, findings.Finding{
				ID:          "author_missing_type",
				Title:       "Author without @type",
				Description: "The author object has no @type. Search engines cannot tell whether it is a Person or an Organization.",
				Severity:    findings.High,
				Category:    findings.Relationships,
				Impact:      "Author recognition, E-E-A-T signals",
				Fix:         `Add "@type": "Person" to the author object`,
				SchemaType:  t,
				Field:       "author",
				EntityID:    entityRef(article),
				Priority:    80,
			})
		}
		if !presentValue(a["url"]) && !presentValue(a["sameAs"]) {
			out = append(out, findings.Finding{
				ID:          "author_no_url",
				Title:       "Author without url or sameAs",
				Description: "The author has no url or sameAs link, so it cannot be connected to an author profile.",
				Severity:    findings.Medium,
				Category:    findings.Relationships,
				Impact:      "Author entity disambiguation",
				Fix:         "Add url or sameAs pointing to the author's profile page",
				SchemaType:  t,
				Field:       "author",
				EntityID:    entityRef(article),
				Priority:    70,
			})
		}
	case string:
		if !strings.HasPrefix(a, "#") {
			out = append(out, findings.Finding{
				ID:          "author_just_string",
				Title:       "Author is a plain string",
				Description: fmt.Sprintf("Author %q is a bare string instead of a Person object or an @id reference.", truncate(a, 50)),
				Severity:    findings.Medium,
				Category:    findings.Relationships,
				Impact:      "Author recognition, E-E-A-T signals",
				Fix:         "Replace the string with a Person object carrying name and url",
				SchemaType:  t,
				Field:       "author",
				EntityID:    entityRef(article),
				Priority:    75,
			})
		}
	}

	return out
}

func checkPublisher(article schema.Entity, t string) []findings.Finding {
	var out []findings.Finding
	publisher, ok := article.Attrs["publisher"]
	if !ok || !article.Has("publisher") {
		out = append(out, findings.Finding{
			ID:          "article_no_publisher",
			Title:       "Article without publisher",
			Description: fmt.Sprintf("%s %q has no publisher. Publisher identifies who stands behind the content.", t, nameOf(article)),
			Severity:    findings.High,
			Category:    findings.Relationships,
			Impact:      "Article rich results eligibility",
			Fix:         "Add a publisher field referencing your Organization",
			SchemaType:  t,
			Field:       "publisher",
			EntityID:    entityRef(article),
			Priority:    80,
		})
		return out
	}

	if p, isDict := publisher.(map[string]any); isDict {
		if !presentValue(p["logo"]) {
			out = append(out, findings.Finding{
				ID:          "publisher_no_logo",
				Title:       "Publisher without logo",
				Description: "The publisher object has no logo. Google requires a publisher logo for article rich results.",
				Severity:    findings.High,
				Category:    findings.Relationships,
				Impact:      "Article rich results eligibility",
				Fix:         "Add a logo ImageObject to the publisher",
				SchemaType:  t,
				Field:       "publisher",
				EntityID:    entityRef(article),
				Priority:    85,
			})
		}
	}

	return out
}

// presentValue mirrors Entity.Has for a raw attribute value.
func presentValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}

func nameOf(e schema.Entity) string {
	if n, ok := e.Attrs["name"].(string); ok && n != "" {
		return truncate(n, 50)
	}
	return entityRef(e)
}
