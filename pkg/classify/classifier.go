// Package classify maps a page URL (and, as fallback, the schema types it
// carries) to a single page-type label. Rule order and fallback order are
// both part of the contract: classification must be deterministic for a
// fixed knowledge base.
package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemalens/schema-audit/pkg/knowledge"
)

// Generic is the label returned when nothing matches.
const Generic = "generic"

// homepagePattern recognizes a bare-root URL in the last-resort fallback.
var homepagePattern = regexp.MustCompile(`^https?://[^/]+/?$`)

// typeFallback is the fixed priority list used when no URL pattern
// matches. Evaluated in declared order.
var typeFallback = []struct {
	label   string
	matches func(types map[string]bool) bool
}{
	{"product", hasAny("Product")},
	{"article", hasAny("Article", "NewsArticle", "BlogPosting")},
	{"recipe", hasAny("Recipe")},
	{"local_business", func(types map[string]bool) bool {
		if types["LocalBusiness"] {
			return true
		}
		for t := range types {
			if strings.Contains(t, "Business") {
				return true
			}
		}
		return false
	}},
	{"event", hasAny("Event")},
	{"job", hasAny("JobPosting")},
	{"faq", hasAny("FAQPage")},
	{"video", hasAny("VideoObject")},
}

func hasAny(names ...string) func(types map[string]bool) bool {
	return func(types map[string]bool) bool {
		for _, n := range names {
			if types[n] {
				return true
			}
		}
		return false
	}
}

type compiledRule struct {
	name     string
	patterns []*regexp.Regexp
}

// Classifier evaluates the knowledge base's page-type rules. Patterns are
// compiled once at construction; the classifier is immutable and safe for
// concurrent use.
type Classifier struct {
	rules []compiledRule
}

// New compiles the base's page-type rules. A pattern that does not compile
// is a configuration error, reported immediately rather than at analysis
// time.
func New(base *knowledge.Base) (*Classifier, error) {
	c := &Classifier{rules: make([]compiledRule, 0, len(base.PageTypeRules))}
	for _, rule := range base.PageTypeRules {
		cr := compiledRule{name: rule.Name}
		for _, p := range rule.URLPatterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("page-type rule %q: bad pattern %q: %w", rule.Name, p, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		c.rules = append(c.rules, cr)
	}
	return c, nil
}

// PageType classifies the page. URL patterns are tried first, in declared
// rule order; then the type-presence fallback list; then the bare-root
// homepage test; then Generic.
func (c *Classifier) PageType(url string, typesFound []string) string {
	lower := strings.ToLower(url)

	for _, rule := range c.rules {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.name
			}
		}
	}

	types := make(map[string]bool, len(typesFound))
	for _, t := range typesFound {
		types[t] = true
	}
	for _, fb := range typeFallback {
		if fb.matches(types) {
			return fb.label
		}
	}

	if homepagePattern.MatchString(lower) {
		return "homepage"
	}
	return Generic
}
