package knowledge

// defaultRequirements is the built-in rich-result requirement table,
// tracking Google's published requirements per schema type.
func defaultRequirements() map[string]Requirement {
	return map[string]Requirement{
		"Product": {
			Required:    []string{"name"},
			Recommended: []string{"image", "description", "brand", "sku", "gtin", "mpn", "offers"},
			Nested: map[string]NestedRequirement{
				"offers": {
					Required:    []string{"price", "priceCurrency", "availability"},
					Recommended: []string{"url", "priceValidUntil", "itemCondition"},
				},
			},
			RichResult: "Product Snippets / Merchant Listings",
			Priority:   95,
		},
		"Article": {
			Required:    []string{"headline", "image", "datePublished", "author"},
			Recommended: []string{"dateModified", "publisher", "description", "mainEntityOfPage"},
			Nested: map[string]NestedRequirement{
				"author": {
					Required:    []string{"name"},
					Recommended: []string{"url", "sameAs"},
				},
				"publisher": {
					Required: []string{"name"},
				},
			},
			RichResult: "Article Rich Results",
			Priority:   85,
		},
		"NewsArticle": {
			Required:    []string{"headline", "image", "datePublished", "author"},
			Recommended: []string{"dateModified", "publisher", "description", "isAccessibleForFree"},
			RichResult:  "Top Stories / News Rich Results",
			Priority:    90,
		},
		"BlogPosting": {
			Required:    []string{"headline", "image", "datePublished", "author"},
			Recommended: []string{"dateModified", "publisher", "description", "wordCount"},
			RichResult:  "Article Rich Results",
			Priority:    80,
		},
		"LocalBusiness": {
			Required:    []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "priceRange", "geo", "url", "aggregateRating"},
			Nested: map[string]NestedRequirement{
				"address": {
					Required:    []string{"streetAddress", "addressLocality", "addressCountry"},
					Recommended: []string{"postalCode", "addressRegion"},
				},
				"geo": {
					Required: []string{"latitude", "longitude"},
				},
			},
			RichResult: "Local Business Panel / Maps",
			Priority:   95,
		},
		"Organization": {
			Required:    []string{"name"},
			Recommended: []string{"logo", "url", "sameAs", "contactPoint", "address", "description"},
			Nested: map[string]NestedRequirement{
				"logo": {
					Recommended: []string{"url", "width", "height"},
				},
			},
			RichResult: "Knowledge Panel",
			Priority:   90,
		},
		"FAQPage": {
			Required: []string{"mainEntity"},
			Nested: map[string]NestedRequirement{
				"mainEntity": {
					Required: []string{"name", "acceptedAnswer"},
				},
			},
			RichResult: "FAQ Rich Results",
			Priority:   85,
		},
		"HowTo": {
			Required:    []string{"name", "step"},
			Recommended: []string{"image", "totalTime", "estimatedCost", "supply", "tool"},
			Nested: map[string]NestedRequirement{
				"step": {
					Required:    []string{"text"},
					Recommended: []string{"name", "image", "url"},
				},
			},
			RichResult: "How-To Rich Results",
			Priority:   80,
		},
		"Recipe": {
			Required: []string{"name", "image"},
			Recommended: []string{"author", "datePublished", "description", "prepTime", "cookTime", "totalTime",
				"recipeYield", "recipeIngredient", "recipeInstructions", "nutrition", "aggregateRating", "video"},
			RichResult: "Recipe Rich Results",
			Priority:   90,
		},
		"Event": {
			Required:    []string{"name", "startDate", "location"},
			Recommended: []string{"endDate", "image", "description", "offers", "performer", "organizer", "eventStatus", "eventAttendanceMode"},
			Nested: map[string]NestedRequirement{
				"offers": {
					Required: []string{"price", "priceCurrency", "availability", "url"},
				},
				"location": {
					Required: []string{"name", "address"},
				},
			},
			RichResult: "Event Rich Results",
			Priority:   85,
		},
		"VideoObject": {
			Required:    []string{"name", "description", "thumbnailUrl", "uploadDate"},
			Recommended: []string{"duration", "contentUrl", "embedUrl", "interactionStatistic", "expires"},
			RichResult:  "Video Rich Results / Video Carousel",
			Priority:    85,
		},
		"WebSite": {
			Required:    []string{"name", "url"},
			Recommended: []string{"potentialAction", "publisher", "inLanguage"},
			Nested: map[string]NestedRequirement{
				"potentialAction": {
					Required: []string{"target", "query-input"},
				},
			},
			RichResult: "Sitelinks Search Box",
			Priority:   80,
		},
		"WebPage": {
			Recommended: []string{"name", "description", "datePublished", "dateModified", "isPartOf", "primaryImageOfPage"},
			Priority:    60,
		},
		"BreadcrumbList": {
			Required: []string{"itemListElement"},
			Nested: map[string]NestedRequirement{
				"itemListElement": {
					Required:    []string{"position", "name"},
					Recommended: []string{"item"},
				},
			},
			RichResult: "Breadcrumb Trail",
			Priority:   75,
		},
		"JobPosting": {
			Required:    []string{"title", "description", "datePosted", "hiringOrganization", "jobLocation"},
			Recommended: []string{"validThrough", "employmentType", "baseSalary", "identifier", "applicantLocationRequirements"},
			Nested: map[string]NestedRequirement{
				"baseSalary": {
					Required: []string{"currency", "value"},
				},
			},
			RichResult: "Job Posting Rich Results",
			Priority:   90,
		},
		"Review": {
			Required:    []string{"itemReviewed", "author"},
			Recommended: []string{"reviewRating", "datePublished", "reviewBody"},
			Nested: map[string]NestedRequirement{
				"reviewRating": {
					Required:    []string{"ratingValue"},
					Recommended: []string{"bestRating", "worstRating"},
				},
			},
			RichResult: "Review Snippet",
			Priority:   80,
		},
		"AggregateRating": {
			Required:    []string{"ratingValue", "ratingCount"},
			Recommended: []string{"bestRating", "worstRating", "reviewCount"},
			RichResult:  "Star Ratings",
			Priority:    85,
		},
		"Course": {
			Required:    []string{"name", "description", "provider"},
			Recommended: []string{"offers", "hasCourseInstance", "coursePrerequisites", "educationalLevel"},
			Nested: map[string]NestedRequirement{
				"hasCourseInstance": {
					Required: []string{"courseMode", "courseWorkload"},
				},
			},
			RichResult: "Course Rich Results",
			Priority:   80,
		},
		"SoftwareApplication": {
			Required:    []string{"name", "offers"},
			Recommended: []string{"operatingSystem", "applicationCategory", "aggregateRating", "screenshot"},
			Nested: map[string]NestedRequirement{
				"offers": {
					Required: []string{"price", "priceCurrency"},
				},
			},
			RichResult: "Software App Rich Results",
			Priority:   75,
		},
		"Person": {
			Required:    []string{"name"},
			Recommended: []string{"image", "url", "sameAs", "jobTitle", "worksFor", "description"},
			RichResult:  "Knowledge Panel (notable persons)",
			Priority:    70,
		},
		"Book": {
			Required:    []string{"name", "author"},
			Recommended: []string{"isbn", "bookFormat", "numberOfPages", "publisher", "datePublished", "aggregateRating"},
			RichResult:  "Book Rich Results",
			Priority:    75,
		},
		"Movie": {
			Required:    []string{"name"},
			Recommended: []string{"image", "dateCreated", "director", "actor", "aggregateRating", "review", "duration"},
			RichResult:  "Movie Carousel",
			Priority:    75,
		},
		"ItemList": {
			Required:    []string{"itemListElement"},
			Recommended: []string{"numberOfItems", "name"},
			Nested: map[string]NestedRequirement{
				"itemListElement": {
					Required: []string{"position"},
				},
			},
			RichResult: "Carousel Rich Results",
			Priority:   70,
		},
		"Service": {
			Required:    []string{"name", "provider"},
			Recommended: []string{"description", "serviceType", "areaServed", "offers", "aggregateRating", "hasOfferCatalog"},
			RichResult:  "Service Rich Results",
			Priority:    75,
		},
		"Offer": {
			Required:    []string{"price", "priceCurrency"},
			Recommended: []string{"availability", "url", "priceValidUntil", "itemCondition", "seller"},
			Priority:    80,
		},

		// Industry-specific schemas

		"Restaurant": {
			Required: []string{"name", "address"},
			Recommended: []string{"servesCuisine", "menu", "telephone", "openingHoursSpecification", "image",
				"priceRange", "aggregateRating", "review", "acceptsReservations", "geo"},
			RichResult: "Restaurant Rich Results / Local Pack",
			Priority:   90,
		},
		"HealthAndBeautyBusiness": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "priceRange",
				"aggregateRating", "review", "geo", "areaServed", "hasOfferCatalog"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"MedicalBusiness": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "medicalSpecialty",
				"aggregateRating", "review", "geo", "healthPlanNetworkId", "isAcceptingNewPatients"},
			RichResult: "Medical Business Panel",
			Priority:   90,
		},
		"Physician": {
			Required: []string{"name"},
			Recommended: []string{"image", "telephone", "address", "medicalSpecialty", "hospitalAffiliation",
				"aggregateRating", "review", "availableService"},
			RichResult: "Physician Panel",
			Priority:   85,
		},
		"DaySpa": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "priceRange",
				"aggregateRating", "review", "geo", "hasOfferCatalog", "amenityFeature"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"BeautySalon": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "priceRange",
				"aggregateRating", "review", "geo", "hasOfferCatalog"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"HomeAndConstructionBusiness": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "image", "priceRange", "areaServed", "aggregateRating",
				"review", "geo", "hasOfferCatalog", "paymentAccepted"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"Electrician": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "areaServed", "aggregateRating", "review", "image",
				"priceRange", "hasOfferCatalog", "availableService"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"Plumber": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "areaServed", "aggregateRating", "review", "image",
				"priceRange", "hasOfferCatalog", "availableService"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"RoofingContractor": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "areaServed", "aggregateRating", "review", "image",
				"priceRange", "hasOfferCatalog"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"GeneralContractor": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "areaServed", "aggregateRating", "review", "image",
				"priceRange", "hasOfferCatalog", "knowsAbout"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"HVACBusiness": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "areaServed", "aggregateRating", "review", "image",
				"priceRange", "hasOfferCatalog"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"LodgingBusiness": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "checkinTime", "checkoutTime", "image", "priceRange",
				"aggregateRating", "review", "amenityFeature", "starRating", "numberOfRooms"},
			RichResult: "Hotel Rich Results",
			Priority:   90,
		},
		"Hotel": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "checkinTime", "checkoutTime", "image", "priceRange",
				"aggregateRating", "review", "amenityFeature", "starRating", "numberOfRooms", "petsAllowed"},
			RichResult: "Hotel Rich Results",
			Priority:   90,
		},
		"RealEstateAgent": {
			Required:    []string{"name", "address"},
			Recommended: []string{"telephone", "areaServed", "aggregateRating", "review", "image", "url"},
			RichResult:  "Local Business Panel",
			Priority:    80,
		},
		"RealEstateListing": {
			Required: []string{"name", "address"},
			Recommended: []string{"price", "priceCurrency", "image", "description", "numberOfRooms",
				"floorSize", "geo", "datePosted", "validThrough"},
			RichResult: "Real Estate Listing",
			Priority:   85,
		},
		"AutoDealer": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "priceRange",
				"aggregateRating", "review", "geo", "brand"},
			RichResult: "Auto Dealer Panel",
			Priority:   85,
		},
		"AutoRepair": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "priceRange",
				"aggregateRating", "review", "geo", "areaServed"},
			RichResult: "Local Business Panel",
			Priority:   85,
		},
		"FinancialService": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "openingHoursSpecification", "image", "aggregateRating",
				"review", "areaServed", "hasOfferCatalog"},
			RichResult: "Local Business Panel",
			Priority:   80,
		},
		"LegalService": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "image", "aggregateRating", "review", "areaServed",
				"knowsAbout", "hasOfferCatalog"},
			RichResult: "Local Business Panel",
			Priority:   80,
		},
		"Attorney": {
			Required: []string{"name"},
			Recommended: []string{"telephone", "address", "image", "aggregateRating", "review",
				"areaServed", "knowsAbout"},
			RichResult: "Attorney Panel",
			Priority:   80,
		},
		"ProfessionalService": {
			Required: []string{"name", "address"},
			Recommended: []string{"telephone", "image", "aggregateRating", "review", "areaServed",
				"hasOfferCatalog", "knowsAbout"},
			RichResult: "Local Business Panel",
			Priority:   75,
		},

		// Content and media schemas

		"Podcast": {
			Required:    []string{"name"},
			Recommended: []string{"description", "image", "author", "publisher", "url", "webFeed"},
			RichResult:  "Podcast Rich Results",
			Priority:    80,
		},
		"PodcastEpisode": {
			Required: []string{"name", "url"},
			Recommended: []string{"description", "datePublished", "duration", "associatedMedia",
				"partOfSeries", "episodeNumber"},
			RichResult: "Podcast Episode Rich Results",
			Priority:   80,
		},
		"PodcastSeries": {
			Required:    []string{"name", "url"},
			Recommended: []string{"description", "image", "author", "publisher", "webFeed", "numberOfEpisodes"},
			RichResult:  "Podcast Series Rich Results",
			Priority:    80,
		},
		"MusicRecording": {
			Required:    []string{"name"},
			Recommended: []string{"byArtist", "inAlbum", "duration", "isrcCode", "datePublished"},
			RichResult:  "Music Rich Results",
			Priority:    70,
		},
		"MusicAlbum": {
			Required:    []string{"name", "byArtist"},
			Recommended: []string{"image", "datePublished", "numTracks", "track", "genre"},
			RichResult:  "Music Album Rich Results",
			Priority:    70,
		},
		"MusicGroup": {
			Required:    []string{"name"},
			Recommended: []string{"image", "genre", "album", "sameAs", "description"},
			RichResult:  "Music Artist Knowledge Panel",
			Priority:    70,
		},
		"TVSeries": {
			Required: []string{"name"},
			Recommended: []string{"image", "description", "actor", "director", "numberOfSeasons",
				"numberOfEpisodes", "aggregateRating"},
			RichResult: "TV Series Carousel",
			Priority:   75,
		},
		"CreativeWork": {
			Required:    []string{"name"},
			Recommended: []string{"author", "datePublished", "description", "image"},
			Priority:    60,
		},

		// Educational schemas

		"EducationalOrganization": {
			Required:    []string{"name", "address"},
			Recommended: []string{"telephone", "image", "url", "sameAs", "aggregateRating", "review"},
			RichResult:  "Educational Organization Panel",
			Priority:    80,
		},
		"CollegeOrUniversity": {
			Required:    []string{"name", "address"},
			Recommended: []string{"telephone", "image", "url", "sameAs", "aggregateRating"},
			RichResult:  "University Knowledge Panel",
			Priority:    85,
		},
		"EducationalOccupationalProgram": {
			Required: []string{"name", "provider"},
			Recommended: []string{"description", "timeToComplete", "occupationalCategory", "programType",
				"offers", "educationalProgramMode"},
			RichResult: "Program Rich Results",
			Priority:   75,
		},

		// E-commerce extended

		"ProductGroup": {
			Required:    []string{"name"},
			Recommended: []string{"description", "image", "brand", "hasVariant", "variesBy"},
			RichResult:  "Product Group Rich Results",
			Priority:    80,
		},
		"OfferCatalog": {
			Required:    []string{"name"},
			Recommended: []string{"itemListElement", "numberOfItems", "description"},
			Priority:    65,
		},
		"ShippingDeliveryTime": {
			Required:    []string{"handlingTime", "transitTime"},
			Recommended: []string{"cutoffTime", "businessDays"},
			RichResult:  "Shipping Info in Product Results",
			Priority:    70,
		},
		"MerchantReturnPolicy": {
			Required:    []string{"applicableCountry", "returnPolicyCategory"},
			Recommended: []string{"merchantReturnDays", "returnMethod", "returnFees"},
			RichResult:  "Return Policy in Product Results",
			Priority:    70,
		},
	}
}
