// Package knowledge holds the declarative knowledge base driving the audit
// engine: per-type requirement rules, URL-pattern page-type rules, social
// platform authority weights, and scoring weights. The base is pure data.
// It carries no behavior beyond lookups, so the rule engine stays one
// generic evaluator instead of one function per schema type.
//
// A Base is built once (Default, optionally overridden via LoadFile) and
// injected into the engine. It is treated as immutable after construction;
// concurrent analyses share it by reference.
package knowledge

import (
	"sort"
	"strings"
)

// NestedRequirement describes required/recommended sub-fields of a nested
// object, e.g. offers.price under Product.
type NestedRequirement struct {
	Required    []string `yaml:"required"`
	Recommended []string `yaml:"recommended"`
}

// Requirement describes what one schema type needs for rich-result
// eligibility. Priority is a 0-100 base weight; RichResult is the result
// label the type unlocks, empty when it unlocks none.
type Requirement struct {
	Required    []string                     `yaml:"required"`
	Recommended []string                     `yaml:"recommended"`
	Nested      map[string]NestedRequirement `yaml:"nested"`
	RichResult  string                       `yaml:"richResult"`
	Priority    int                          `yaml:"priority"`
}

// PageTypeRule maps URL patterns to the schemas a page archetype should
// carry. Rules are evaluated in declared order; the first matching pattern
// wins. The order is part of the classifier contract.
type PageTypeRule struct {
	Name            string   `yaml:"name"`
	URLPatterns     []string `yaml:"urlPatterns"`
	ExpectedSchemas []string `yaml:"expectedSchemas"`
	OptionalSchemas []string `yaml:"optionalSchemas"`
}

// Platform is a social or reference platform carrying authority weight for
// trust-signal checks.
type Platform struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// EntityCategory is the coarse category an entity falls into, used by the
// identity resolver and the relationship graph.
type EntityCategory string

const (
	CategoryOrganization EntityCategory = "organization"
	CategoryWebsite      EntityCategory = "website"
	CategoryPage         EntityCategory = "page"
	CategoryPerson       EntityCategory = "person"
	CategoryContent      EntityCategory = "content"
	CategoryOther        EntityCategory = "other"
)

// categoryRule maps a case-insensitive type-name substring to a category.
// Evaluated in order; first match wins. Table-driven on purpose: adding a
// category is a data change, not a new branch.
type categoryRule struct {
	Substring string
	Category  EntityCategory
}

var categoryRules = []categoryRule{
	{"organization", CategoryOrganization},
	{"business", CategoryOrganization},
	{"website", CategoryWebsite},
	{"webpage", CategoryPage},
	{"person", CategoryPerson},
	{"article", CategoryContent},
	{"product", CategoryContent},
	{"event", CategoryContent},
	{"recipe", CategoryContent},
}

// Base is the complete immutable knowledge base.
type Base struct {
	Requirements  map[string]Requirement
	PageTypeRules []PageTypeRule
	Platforms     map[string]Platform
	Scoring       ScoringWeights
}

// Default returns the built-in knowledge base.
func Default() *Base {
	return &Base{
		Requirements:  defaultRequirements(),
		PageTypeRules: defaultPageTypeRules(),
		Platforms:     defaultPlatforms(),
		Scoring:       DefaultScoringWeights(),
	}
}

// RequirementFor looks up the requirement rule for a schema type.
func (b *Base) RequirementFor(schemaType string) (Requirement, bool) {
	req, ok := b.Requirements[schemaType]
	return req, ok
}

// PageTypeRuleFor looks up a page-type rule by name.
func (b *Base) PageTypeRuleFor(name string) (PageTypeRule, bool) {
	for _, rule := range b.PageTypeRules {
		if rule.Name == name {
			return rule, true
		}
	}
	return PageTypeRule{}, false
}

// PlatformFor matches a link against the platform table by domain
// substring. The match is case-insensitive on the link. Domains are tried
// in sorted order so a link that happens to embed two platform domains
// always resolves to the same one.
func (b *Base) PlatformFor(link string) (Platform, bool) {
	lower := strings.ToLower(link)
	domains := make([]string, 0, len(b.Platforms))
	for domain := range b.Platforms {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	for _, domain := range domains {
		if strings.Contains(lower, domain) {
			return b.Platforms[domain], true
		}
	}
	return Platform{}, false
}

// CategoryOf classifies a type-name list into an entity category by
// case-insensitive substring match. First matching rule wins; first type
// name wins among the types.
func CategoryOf(types []string) EntityCategory {
	for _, t := range types {
		lower := strings.ToLower(t)
		for _, rule := range categoryRules {
			if strings.Contains(lower, rule.Substring) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}
