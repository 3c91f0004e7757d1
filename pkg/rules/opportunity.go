package rules

import (
	"github.com/schemalens/schema-audit/pkg/findings"
)

// Opportunities suggests schemas and fields that would unlock additional
// rich results for what the page already contains.
func (e *Engine) Opportunities(ctx Context) []findings.Finding {
	var out []findings.Finding
	present := ctx.typesPresent()

	switch ctx.PageType {
	case "article", "product", "local_business":
		if !present["FAQPage"] {
			out = append(out, findings.Finding{
				ID:          "opportunity_faq",
				Title:       "Opportunity: FAQ schema",
				Description: "Pages of this kind often answer common questions. An FAQPage schema surfaces them directly in search results.",
				Severity:    findings.Low,
				Category:    findings.Opportunity,
				Impact:      "FAQ Rich Results",
				Fix:         "Add an FAQPage schema with Question/Answer pairs for questions the page already answers",
				SchemaType:  "FAQPage",
				RichResult:  "FAQ Rich Results",
				Priority:    60,
			})
		}
	}

	if ctx.PageType == "article" && !present["HowTo"] {
		out = append(out, findings.Finding{
			ID:          "opportunity_howto",
			Title:       "Opportunity: HowTo schema",
			Description: "If the article walks through steps, a HowTo schema can earn a step-by-step rich result.",
			Severity:    findings.Low,
			Category:    findings.Opportunity,
			Impact:      "How-to Rich Results",
			Fix:         "Mark up instructional content with a HowTo schema and its step list",
			SchemaType:  "HowTo",
			RichResult:  "How-to Rich Results",
			Priority:    50,
		})
	}

	if !present["VideoObject"] && pageHasVideo(ctx.OpenGraph) {
		out = append(out, findings.Finding{
			ID:          "opportunity_video",
			Title:       "Video without VideoObject schema",
			Description: "Open Graph tags indicate the page embeds a video, but no VideoObject schema describes it.",
			Severity:    findings.High,
			Category:    findings.Opportunity,
			Impact:      "Video Rich Results, video search",
			Fix:         "Add a VideoObject schema with name, description, thumbnailUrl, uploadDate",
			SchemaType:  "VideoObject",
			RichResult:  "Video Rich Results",
			Priority:    80,
		})
	}

	for _, site := range ctx.ByType["WebSite"] {
		if !site.Has("potentialAction") {
			out = append(out, findings.Finding{
				ID:          "opportunity_search_action",
				Title:       "WebSite without SearchAction",
				Description: "The WebSite schema lacks a potentialAction, so the sitelinks search box cannot appear.",
				Severity:    findings.Medium,
				Category:    findings.Opportunity,
				Impact:      "Sitelinks Search Box",
				Fix:         "Add a SearchAction potentialAction with target and query-input",
				SchemaType:  "WebSite",
				Field:       "potentialAction",
				EntityID:    entityRef(site),
				RichResult:  "Sitelinks Search Box",
				Priority:    70,
			})
		}
	}

	for _, product := range ctx.ByType["Product"] {
		if !product.Has("aggregateRating") && !product.Has("review") {
			out = append(out, findings.Finding{
				ID:          "product_no_rating",
				Title:       "Product without ratings",
				Description: "The product has neither aggregateRating nor review. Star ratings strongly affect click-through.",
				Severity:    findings.Medium,
				Category:    findings.Opportunity,
				Impact:      "Star ratings in product results",
				Fix:         "Add aggregateRating or review markup from real customer reviews",
				SchemaType:  "Product",
				Field:       "aggregateRating",
				EntityID:    entityRef(product),
				RichResult:  "Review Stars",
				Priority:    75,
			})
		}
	}

	for _, biz := range ctx.ByType["LocalBusiness"] {
		if !biz.Has("aggregateRating") && !biz.Has("review") {
			out = append(out, findings.Finding{
				ID:          "business_no_rating",
				Title:       "Business without ratings",
				Description: "The local business has neither aggregateRating nor review markup.",
				Severity:    findings.Medium,
				Category:    findings.Opportunity,
				Impact:      "Star ratings in local results",
				Fix:         "Add aggregateRating from real customer reviews",
				SchemaType:  "LocalBusiness",
				Field:       "aggregateRating",
				EntityID:    entityRef(biz),
				RichResult:  "Review Stars",
				Priority:    75,
			})
		}
	}

	return out
}

func pageHasVideo(og map[string]string) bool {
	if og == nil {
		return false
	}
	if og["og:type"] == "video" {
		return true
	}
	_, ok := og["og:video"]
	return ok
}
