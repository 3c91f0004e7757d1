// Package identity selects the canonical Organization, WebSite, WebPage,
// and Author entities from a flattened entity set.
package identity

import (
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// Identity is a snapshot of the page's canonical entities. Fields are nil
// when no entity of that category exists. The snapshot references the
// chosen entities; it never copies or mutates them.
type Identity struct {
	Organization *schema.Entity
	Website      *schema.Entity
	Page         *schema.Entity
	Author       *schema.Entity
}

// Resolve picks one canonical entity per category. The first match in
// document order wins per category; this tie-break is deliberate, since the
// first block on a page is overwhelmingly the primary definition. A
// multi-typed entity can fill several slots at once, so a combined
// ["Organization","WebSite"] block claims both. The one exception to
// first-seen is the WebPage slot: an entity whose url attribute equals the
// page URL is preferred over the first-seen one.
func Resolve(entities []schema.Entity, pageURL string) Identity {
	var id Identity
	for i := range entities {
		e := &entities[i]
		for _, cat := range categoriesOf(e.Types) {
			switch cat {
			case knowledge.CategoryOrganization:
				if id.Organization == nil {
					id.Organization = e
				}
			case knowledge.CategoryWebsite:
				if id.Website == nil {
					id.Website = e
				}
			case knowledge.CategoryPage:
				if id.Page == nil {
					id.Page = e
				} else if pageURL != "" && e.String("url") == pageURL && id.Page.String("url") != pageURL {
					id.Page = e
				}
			case knowledge.CategoryPerson:
				if id.Author == nil {
					id.Author = e
				}
			}
		}
	}
	return id
}

// categoriesOf returns the distinct categories an entity's type list
// matches, in type-list order. Each type name is classified on its own so
// a multi-typed entity maps to every category it names.
func categoriesOf(types []string) []knowledge.EntityCategory {
	var out []knowledge.EntityCategory
	seen := make(map[knowledge.EntityCategory]bool)
	for _, t := range types {
		cat := knowledge.CategoryOf([]string{t})
		if cat == knowledge.CategoryOther || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}
