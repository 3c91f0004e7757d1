package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/schemalens/schema-audit/pkg/findings"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// suspiciousTypes are common misspellings of real schema types. A
// misspelled type is worse than a missing one: it looks intentional and
// validates nowhere.
var suspiciousTypes = map[string]bool{
	"organisations": true,
	"organisation":  true,
	"artical":       true,
	"prodcut":       true,
}

// dateFields are the attributes that must carry ISO-8601 values.
var dateFields = []string{
	"datePublished", "dateModified", "startDate", "endDate",
	"uploadDate", "datePosted", "validThrough",
}

// iso8601 matches a date or date-time: YYYY-MM-DD with optional
// THH:MM[:SS][Z|±HH:MM].
var iso8601 = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?(Z|[+-]\d{2}:\d{2})?)?$`)

// urlFields are the attributes that must look like URLs: absolute with a
// scheme, or root-relative.
var urlFields = []string{
	"url", "image", "logo", "sameAs", "mainEntityOfPage",
	"contentUrl", "embedUrl", "thumbnailUrl",
}

// currencySymbols are stripped from price strings before numeric parsing.
var currencySymbols = strings.NewReplacer("$", "", "€", "", "₪", "", "£", "", ",", "", " ", "")

// Critical flags markup that is broken outright: missing or misspelled
// types, absent required fields, malformed dates, URLs, prices and
// currency codes.
func (e *Engine) Critical(ctx Context) []findings.Finding {
	var out []findings.Finding
	out = append(out, e.checkMissingTypes(ctx)...)
	out = append(out, e.checkSuspiciousTypes(ctx)...)
	out = append(out, e.checkRequiredFields(ctx)...)
	out = append(out, e.checkNestedRequired(ctx)...)
	out = append(out, e.checkDateFormats(ctx)...)
	out = append(out, e.checkURLFormats(ctx)...)
	out = append(out, e.checkPriceFormats(ctx)...)
	return out
}

func (e *Engine) checkMissingTypes(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		if len(entity.Types) > 0 {
			continue
		}
		out = append(out, findings.Finding{
			ID:          "missing_type",
			Title:       "Entity without @type",
			Description: "An entity has no @type declaration. Search engines will not recognize it at all.",
			Severity:    findings.Critical,
			Category:    findings.Broken,
			Impact:      "The entity will be ignored entirely",
			Fix:         "Add an @type field with the appropriate schema type",
			EntityID:    entityRef(entity),
			Priority:    100,
		})
	}
	return out
}

func (e *Engine) checkSuspiciousTypes(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		for _, t := range entity.Types {
			if !suspiciousTypes[strings.ToLower(t)] {
				continue
			}
			out = append(out, findings.Finding{
				ID:          "typo_in_type",
				Title:       fmt.Sprintf("Misspelled @type: %s", t),
				Description: fmt.Sprintf("The type %q looks like a misspelling. Non-standard types are never recognized.", t),
				Severity:    findings.Critical,
				Category:    findings.Broken,
				Impact:      "The entity will not appear in any rich result",
				Fix:         "Correct the @type (for example Organization, Article, Product)",
				SchemaType:  t,
				EntityID:    entity.ID,
				Priority:    100,
			})
		}
	}
	return out
}

func (e *Engine) checkRequiredFields(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		for _, t := range entity.Types {
			req, ok := e.base.RequirementFor(t)
			if !ok {
				continue
			}
			for _, field := range req.Required {
				if entity.Has(field) {
					continue
				}
				out = append(out, findings.Finding{
					ID:          fmt.Sprintf("missing_required_%s_%s", t, field),
					Title:       fmt.Sprintf("%s: missing required field %q", t, field),
					Description: fmt.Sprintf("The %s field is required for %s per Google's rich-result documentation.", field, t),
					Severity:    findings.Critical,
					Category:    findings.Broken,
					Impact:      fmt.Sprintf("The markup will fail validation and lose eligibility for %s", richResultOr(req.RichResult, "rich results")),
					Fix:         fmt.Sprintf("Add the %s field with a valid value", field),
					SchemaType:  t,
					Field:       field,
					EntityID:    entity.ID,
					RichResult:  req.RichResult,
					Priority:    95,
				})
			}
		}
	}
	return out
}

// checkNestedRequired validates required sub-fields of nested objects that
// are present, e.g. offers.price on Product. An absent parent is not
// flagged here; the required/recommended top-level checks own that.
func (e *Engine) checkNestedRequired(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		for _, t := range entity.Types {
			req, ok := e.base.RequirementFor(t)
			if !ok || len(req.Nested) == 0 {
				continue
			}
			for _, parent := range sortedKeys(req.Nested) {
				nested := req.Nested[parent]
				if len(nested.Required) == 0 {
					continue
				}
				raw, present := entity.Get(parent)
				if !present {
					continue
				}
				for _, obj := range nestedObjects(raw) {
					for _, sub := range nested.Required {
						if v, ok := obj[sub]; ok && !schema.IsEmpty(v) {
							continue
						}
						out = append(out, findings.Finding{
							ID:          fmt.Sprintf("empty_nested_%s_%s_%s", t, parent, sub),
							Title:       fmt.Sprintf("%s.%s: missing %s", t, parent, sub),
							Description: fmt.Sprintf("The %s object is present but lacks its required %s field.", parent, sub),
							Severity:    findings.Critical,
							Category:    findings.Broken,
							Impact:      "Partial markup; search engines may discard it",
							Fix:         fmt.Sprintf("Add the %s field to the %s object", sub, parent),
							SchemaType:  t,
							Field:       parent + "." + sub,
							EntityID:    entity.ID,
							Priority:    93,
						})
					}
				}
			}
		}
	}
	return out
}

func (e *Engine) checkDateFormats(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		for _, field := range dateFields {
			value, ok := entity.Attrs[field].(string)
			if !ok || value == "" || iso8601.MatchString(value) {
				continue
			}
			out = append(out, findings.Finding{
				ID:          "invalid_date_" + field,
				Title:       fmt.Sprintf("Invalid date format: %s", field),
				Description: fmt.Sprintf("The value %q is not valid ISO 8601.", value),
				Severity:    findings.Critical,
				Category:    findings.Broken,
				Impact:      "The date will not be interpreted correctly",
				Fix:         "Use ISO 8601: YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ",
				Field:       field,
				EntityID:    entity.ID,
				Priority:    90,
			})
		}
	}
	return out
}

func (e *Engine) checkURLFormats(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		for _, field := range urlFields {
			raw, ok := entity.Get(field)
			if !ok {
				continue
			}
			for _, item := range schema.AsList(raw) {
				s, ok := item.(string)
				if !ok || s == "" {
					continue
				}
				if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "/") {
					continue
				}
				out = append(out, findings.Finding{
					ID:          "invalid_url_" + field,
					Title:       fmt.Sprintf("Invalid URL in %s", field),
					Description: fmt.Sprintf("The value %q is not a valid URL.", truncate(s, 50)),
					Severity:    findings.High,
					Category:    findings.Broken,
					Impact:      "Broken links undermine the credibility of the markup",
					Fix:         "Use a full URL starting with https://",
					Field:       field,
					EntityID:    entity.ID,
					Priority:    85,
				})
			}
		}
	}
	return out
}

// checkPriceFormats validates price and currency on Offer entities and on
// nested offers objects.
func (e *Engine) checkPriceFormats(ctx Context) []findings.Finding {
	var out []findings.Finding
	for _, entity := range ctx.Entities {
		var offers []map[string]any
		if raw, ok := entity.Get("offers"); ok {
			offers = nestedObjects(raw)
		} else if entity.HasType("Offer") {
			offers = []map[string]any{entity.Attrs}
		}

		for _, offer := range offers {
			if price, ok := offer["price"].(string); ok && price != "" {
				cleaned := currencySymbols.Replace(price)
				if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
					out = append(out, findings.Finding{
						ID:          "invalid_price_format",
						Title:       "Invalid price format",
						Description: fmt.Sprintf("The value %q does not parse as a number. The price must be numeric only.", price),
						Severity:    findings.High,
						Category:    findings.Broken,
						Impact:      "The price will not appear in rich results",
						Fix:         "Use a plain number (for example 99.99) and set the currency in priceCurrency",
						Field:       "price",
						EntityID:    entity.ID,
						Priority:    88,
					})
				}
			}

			if currency, ok := offer["priceCurrency"].(string); ok && currency != "" && len([]rune(currency)) != 3 {
				out = append(out, findings.Finding{
					ID:          "invalid_currency_format",
					Title:       "Invalid currency code",
					Description: fmt.Sprintf("The value %q is not a valid ISO 4217 currency code.", currency),
					Severity:    findings.High,
					Category:    findings.Broken,
					Impact:      "The price will not be displayed correctly",
					Fix:         "Use an ISO 4217 code (for example USD, EUR, ILS)",
					Field:       "priceCurrency",
					EntityID:    entity.ID,
					Priority:    88,
				})
			}
		}
	}
	return out
}

// nestedObjects normalizes a nested attribute value into its object forms:
// a single object becomes a one-element slice, a sequence keeps its
// objects, anything else contributes nothing.
func nestedObjects(v any) []map[string]any {
	var objs []map[string]any
	for _, item := range schema.AsList(v) {
		if m, ok := item.(map[string]any); ok {
			objs = append(objs, m)
		}
	}
	return objs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func richResultOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
