package knowledge

// defaultPageTypeRules is the built-in ordered page-type rule list. Order
// matters: the classifier returns the first rule whose URL pattern matches,
// so more specific archetypes must stay ahead of broader ones.
func defaultPageTypeRules() []PageTypeRule {
	return []PageTypeRule{
		// General page types
		{
			Name:            "homepage",
			URLPatterns:     []string{`^https?://[^/]+/?$`, `^https?://[^/]+/(index\.html?)?$`},
			ExpectedSchemas: []string{"Organization", "WebSite", "WebPage"},
			OptionalSchemas: []string{"LocalBusiness", "ItemList"},
		},
		{
			Name:            "about",
			URLPatterns:     []string{`/about`, `/about-us`, `/who-we-are`, `/our-story`, `/company`},
			ExpectedSchemas: []string{"Organization", "WebPage", "BreadcrumbList"},
			OptionalSchemas: []string{"Person", "LocalBusiness"},
		},
		{
			Name:            "contact",
			URLPatterns:     []string{`/contact`, `/contact-us`, `/get-in-touch`, `/reach-us`},
			ExpectedSchemas: []string{"Organization", "ContactPage", "BreadcrumbList"},
			OptionalSchemas: []string{"LocalBusiness", "PostalAddress"},
		},
		{
			Name:            "service",
			URLPatterns:     []string{`/service/`, `/services/`, `/our-services`, `/what-we-do`},
			ExpectedSchemas: []string{"Service", "BreadcrumbList", "Organization"},
			OptionalSchemas: []string{"FAQPage", "HowTo", "Offer"},
		},
		{
			Name:            "pricing",
			URLPatterns:     []string{`/pricing`, `/prices`, `/plans`, `/packages`},
			ExpectedSchemas: []string{"WebPage", "BreadcrumbList"},
			OptionalSchemas: []string{"Offer", "Product", "Service", "FAQPage"},
		},
		{
			Name:            "landing",
			URLPatterns:     []string{`/lp/`, `/landing/`, `/campaign/`, `/promo/`},
			ExpectedSchemas: []string{"WebPage"},
			OptionalSchemas: []string{"Product", "Service", "Offer", "FAQPage", "Review"},
		},
		{
			Name:            "testimonials",
			URLPatterns:     []string{`/testimonials`, `/reviews`, `/customer-stories`, `/success-stories`},
			ExpectedSchemas: []string{"WebPage", "BreadcrumbList"},
			OptionalSchemas: []string{"Review", "AggregateRating", "ItemList"},
		},
		{
			Name:            "portfolio",
			URLPatterns:     []string{`/portfolio`, `/work/`, `/projects/`, `/case-stud`},
			ExpectedSchemas: []string{"WebPage", "BreadcrumbList"},
			OptionalSchemas: []string{"CreativeWork", "ItemList", "ImageGallery"},
		},

		// E-commerce page types
		{
			Name:            "product",
			URLPatterns:     []string{`/product/`, `/p/`, `/item/`, `/shop/.+/`, `/מוצר/`},
			ExpectedSchemas: []string{"Product", "BreadcrumbList"},
			OptionalSchemas: []string{"AggregateRating", "Review", "FAQPage", "Offer"},
		},
		{
			Name:            "category",
			URLPatterns:     []string{`/category/`, `/c/`, `/collection/`, `/קטגוריה/`},
			ExpectedSchemas: []string{"ItemList", "BreadcrumbList", "CollectionPage"},
			OptionalSchemas: []string{"FAQPage", "Product"},
		},
		{
			Name:            "collection",
			URLPatterns:     []string{`/collection/`, `/collections/`, `/sale/`, `/deals/`, `/new-arrivals`},
			ExpectedSchemas: []string{"ItemList", "BreadcrumbList", "CollectionPage"},
			OptionalSchemas: []string{"Offer", "Product"},
		},
		{
			Name:            "cart",
			URLPatterns:     []string{`/cart`, `/basket`, `/shopping-cart`},
			ExpectedSchemas: []string{"WebPage"},
		},
		{
			Name:            "checkout",
			URLPatterns:     []string{`/checkout`, `/order`, `/payment`},
			ExpectedSchemas: []string{"WebPage"},
		},
		{
			Name:            "comparison",
			URLPatterns:     []string{`/compare`, `/comparison`, `/vs/`, `-vs-`},
			ExpectedSchemas: []string{"WebPage", "BreadcrumbList"},
			OptionalSchemas: []string{"Product", "ItemList"},
		},

		// Content page types
		{
			Name:            "article",
			URLPatterns:     []string{`/blog/`, `/article/`, `/post/`, `/news/`, `/מאמר/`},
			ExpectedSchemas: []string{"Article", "BreadcrumbList", "WebPage"},
			OptionalSchemas: []string{"Person", "FAQPage", "HowTo", "VideoObject"},
		},
		{
			Name:            "blog_home",
			URLPatterns:     []string{`/blog/?$`, `/articles/?$`, `/news/?$`},
			ExpectedSchemas: []string{"Blog", "BreadcrumbList", "ItemList"},
			OptionalSchemas: []string{"Organization"},
		},
		{
			Name:            "faq",
			URLPatterns:     []string{`/faq`, `/help/`, `/support/`, `/questions/`, `/שאלות`},
			ExpectedSchemas: []string{"FAQPage", "BreadcrumbList"},
			OptionalSchemas: []string{"HowTo", "Article"},
		},
		{
			Name:            "howto",
			URLPatterns:     []string{`/how-to/`, `/guide/`, `/tutorial/`, `/איך-ל`},
			ExpectedSchemas: []string{"HowTo", "BreadcrumbList"},
			OptionalSchemas: []string{"Article", "VideoObject", "FAQPage"},
		},
		{
			Name:            "video",
			URLPatterns:     []string{`/video/`, `/watch/`, `/v/`, `/וידאו/`},
			ExpectedSchemas: []string{"VideoObject", "BreadcrumbList"},
			OptionalSchemas: []string{"Article", "HowTo", "Course"},
		},
		{
			Name:            "podcast",
			URLPatterns:     []string{`/podcast/`, `/episode/`, `/פודקאסט/`},
			ExpectedSchemas: []string{"PodcastEpisode", "BreadcrumbList"},
			OptionalSchemas: []string{"PodcastSeries", "Person", "Organization"},
		},
		{
			Name:            "person",
			URLPatterns:     []string{`/author/`, `/team/`, `/staff/`, `/profile/`, `/expert/`},
			ExpectedSchemas: []string{"Person", "WebPage", "BreadcrumbList"},
			OptionalSchemas: []string{"Organization", "Article"},
		},

		// Local business page types
		{
			Name:            "local_business",
			URLPatterns:     []string{`/location/`, `/store/`, `/branch/`, `/סניף/`},
			ExpectedSchemas: []string{"LocalBusiness", "Organization", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "AggregateRating", "Review"},
		},
		{
			Name:            "store_locator",
			URLPatterns:     []string{`/locations`, `/stores`, `/branches`, `/find-us`, `/סניפים`},
			ExpectedSchemas: []string{"Organization", "BreadcrumbList"},
			OptionalSchemas: []string{"LocalBusiness", "ItemList"},
		},

		// Health and beauty
		{
			Name:            "medspa",
			URLPatterns:     []string{`/medspa`, `/med-spa`, `/aesthetic`, `/מדספא`, `/אסתטיק`},
			ExpectedSchemas: []string{"HealthAndBeautyBusiness", "Organization", "BreadcrumbList"},
			OptionalSchemas: []string{"MedicalBusiness", "Service", "FAQPage", "AggregateRating"},
		},
		{
			Name:            "medspa_treatment",
			URLPatterns:     []string{`/treatment/`, `/procedure/`, `/טיפול/`, `/botox`, `/filler`, `/laser`},
			ExpectedSchemas: []string{"Service", "MedicalBusiness", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "HowTo", "Review", "Offer"},
		},
		{
			Name:            "beauty_salon",
			URLPatterns:     []string{`/salon/`, `/beauty/`, `/hair/`, `/nail/`, `/מספרה/`, `/יופי/`},
			ExpectedSchemas: []string{"BeautySalon", "BreadcrumbList"},
			OptionalSchemas: []string{"Service", "FAQPage", "AggregateRating", "Offer"},
		},
		{
			Name:            "spa",
			URLPatterns:     []string{`/spa/`, `/wellness/`, `/massage/`, `/ספא/`},
			ExpectedSchemas: []string{"DaySpa", "BreadcrumbList"},
			OptionalSchemas: []string{"Service", "FAQPage", "AggregateRating", "Offer"},
		},

		// Home services and construction
		{
			Name:            "solar",
			URLPatterns:     []string{`/solar/`, `/panels/`, `/photovoltaic/`, `/סולארי/`, `/פאנלים/`},
			ExpectedSchemas: []string{"HomeAndConstructionBusiness", "Service", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "HowTo", "Review", "Offer", "Product"},
		},
		{
			Name:            "solar_installation",
			URLPatterns:     []string{`/installation/`, `/התקנה/`, `/התקנת-פאנלים/`},
			ExpectedSchemas: []string{"Service", "BreadcrumbList"},
			OptionalSchemas: []string{"HowTo", "FAQPage", "Offer", "Review"},
		},
		{
			Name:            "carpentry",
			URLPatterns:     []string{`/carpentry/`, `/woodwork/`, `/cabinet/`, `/נגרות/`, `/נגריה/`, `/ארונות/`},
			ExpectedSchemas: []string{"HomeAndConstructionBusiness", "Service", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "Review", "Offer", "ImageGallery"},
		},
		{
			Name:            "contractor",
			URLPatterns:     []string{`/contractor/`, `/construction/`, `/renovation/`, `/remodel/`, `/שיפוץ/`, `/קבלן/`},
			ExpectedSchemas: []string{"GeneralContractor", "Service", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "Review", "Offer", "HowTo"},
		},
		{
			Name:            "electrician",
			URLPatterns:     []string{`/electrician/`, `/electrical/`, `/חשמלאי/`, `/חשמל/`},
			ExpectedSchemas: []string{"Electrician", "Service", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "Review", "Offer"},
		},
		{
			Name:            "plumber",
			URLPatterns:     []string{`/plumber/`, `/plumbing/`, `/אינסטלטור/`, `/אינסטלציה/`},
			ExpectedSchemas: []string{"Plumber", "Service", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "Review", "Offer"},
		},
		{
			Name:            "hvac",
			URLPatterns:     []string{`/hvac/`, `/air-conditioning/`, `/heating/`, `/מיזוג/`, `/מזגנים/`},
			ExpectedSchemas: []string{"HVACBusiness", "Service", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "Review", "Offer", "Product"},
		},
		{
			Name:            "roofing",
			URLPatterns:     []string{`/roofing/`, `/roof/`, `/גגות/`, `/איטום/`},
			ExpectedSchemas: []string{"RoofingContractor", "Service", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "Review", "Offer"},
		},

		// Hospitality
		{
			Name:            "restaurant",
			URLPatterns:     []string{`/restaurant/`, `/dining/`, `/menu/`, `/מסעדה/`},
			ExpectedSchemas: []string{"Restaurant", "BreadcrumbList"},
			OptionalSchemas: []string{"Menu", "FAQPage", "AggregateRating", "Review"},
		},
		{
			Name:            "hotel",
			URLPatterns:     []string{`/hotel/`, `/resort/`, `/accommodation/`, `/מלון/`, `/לינה/`},
			ExpectedSchemas: []string{"Hotel", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "AggregateRating", "Review", "Offer"},
		},
		{
			Name:            "room",
			URLPatterns:     []string{`/room/`, `/suite/`, `/חדר/`},
			ExpectedSchemas: []string{"HotelRoom", "BreadcrumbList"},
			OptionalSchemas: []string{"Offer", "AggregateRating"},
		},

		// Real estate
		{
			Name:            "real_estate",
			URLPatterns:     []string{`/property/`, `/listing/`, `/נכס/`, `/דירה/`, `/בית/`},
			ExpectedSchemas: []string{"RealEstateListing", "BreadcrumbList"},
			OptionalSchemas: []string{"Place", "Offer", "ImageGallery"},
		},
		{
			Name:            "real_estate_agent",
			URLPatterns:     []string{`/agent/`, `/realtor/`, `/תיווך/`, `/מתווך/`},
			ExpectedSchemas: []string{"RealEstateAgent", "Person", "BreadcrumbList"},
			OptionalSchemas: []string{"Organization", "Review", "AggregateRating"},
		},

		// Automotive
		{
			Name:            "auto_dealer",
			URLPatterns:     []string{`/dealer/`, `/dealership/`, `/cars/`, `/vehicles/`, `/רכב/`, `/סוכנות/`},
			ExpectedSchemas: []string{"AutoDealer", "BreadcrumbList"},
			OptionalSchemas: []string{"Product", "Offer", "AggregateRating", "Review"},
		},
		{
			Name:            "vehicle",
			URLPatterns:     []string{`/vehicle/`, `/car/`, `/auto/`, `/רכב/`},
			ExpectedSchemas: []string{"Vehicle", "Product", "BreadcrumbList"},
			OptionalSchemas: []string{"Offer", "AggregateRating", "Review"},
		},
		{
			Name:            "auto_repair",
			URLPatterns:     []string{`/repair/`, `/garage/`, `/mechanic/`, `/מוסך/`, `/תיקון/`},
			ExpectedSchemas: []string{"AutoRepair", "BreadcrumbList"},
			OptionalSchemas: []string{"Service", "FAQPage", "Review"},
		},

		// Professional services
		{
			Name:            "legal",
			URLPatterns:     []string{`/attorney/`, `/lawyer/`, `/law/`, `/legal/`, `/עורך-דין/`, `/משפט/`},
			ExpectedSchemas: []string{"LegalService", "BreadcrumbList"},
			OptionalSchemas: []string{"Attorney", "Person", "FAQPage", "Review"},
		},
		{
			Name:            "financial",
			URLPatterns:     []string{`/financial/`, `/accounting/`, `/tax/`, `/רואה-חשבון/`, `/פיננסי/`, `/מס/`},
			ExpectedSchemas: []string{"FinancialService", "BreadcrumbList"},
			OptionalSchemas: []string{"Service", "FAQPage", "Review"},
		},
		{
			Name:            "medical",
			URLPatterns:     []string{`/doctor/`, `/clinic/`, `/medical/`, `/health/`, `/רופא/`, `/מרפאה/`},
			ExpectedSchemas: []string{"MedicalBusiness", "BreadcrumbList"},
			OptionalSchemas: []string{"Physician", "FAQPage", "Review", "Service"},
		},

		// Education
		{
			Name:            "course",
			URLPatterns:     []string{`/course/`, `/class/`, `/learn/`, `/training/`, `/קורס/`, `/לימודים/`},
			ExpectedSchemas: []string{"Course", "BreadcrumbList"},
			OptionalSchemas: []string{"Organization", "VideoObject", "FAQPage", "Review", "Offer"},
		},
		{
			Name:            "program",
			URLPatterns:     []string{`/program/`, `/degree/`, `/certification/`, `/תוכנית/`},
			ExpectedSchemas: []string{"EducationalOccupationalProgram", "BreadcrumbList"},
			OptionalSchemas: []string{"Course", "Organization", "FAQPage"},
		},
		{
			Name:            "school",
			URLPatterns:     []string{`/school/`, `/academy/`, `/institute/`, `/בית-ספר/`, `/אקדמיה/`},
			ExpectedSchemas: []string{"EducationalOrganization", "BreadcrumbList"},
			OptionalSchemas: []string{"Course", "FAQPage", "Review"},
		},

		// Events
		{
			Name:            "event",
			URLPatterns:     []string{`/event/`, `/events/`, `/webinar/`, `/conference/`, `/אירוע/`},
			ExpectedSchemas: []string{"Event", "BreadcrumbList"},
			OptionalSchemas: []string{"Organization", "Place", "Offer", "Person"},
		},
		{
			Name:            "event_venue",
			URLPatterns:     []string{`/venue/`, `/hall/`, `/location/`, `/אולם/`},
			ExpectedSchemas: []string{"EventVenue", "Place", "BreadcrumbList"},
			OptionalSchemas: []string{"Organization", "FAQPage", "Review"},
		},

		// Software
		{
			Name:            "software",
			URLPatterns:     []string{`/software/`, `/app/`, `/download/`, `/tool/`, `/אפליקציה/`, `/תוכנה/`},
			ExpectedSchemas: []string{"SoftwareApplication", "BreadcrumbList"},
			OptionalSchemas: []string{"FAQPage", "Review", "AggregateRating", "Offer"},
		},

		// Media and entertainment
		{
			Name:            "recipe",
			URLPatterns:     []string{`/recipe/`, `/recipes/`, `/מתכון/`},
			ExpectedSchemas: []string{"Recipe", "BreadcrumbList"},
			OptionalSchemas: []string{"VideoObject", "HowTo", "ItemList", "AggregateRating"},
		},
		{
			Name:            "book",
			URLPatterns:     []string{`/book/`, `/ebook/`, `/ספר/`},
			ExpectedSchemas: []string{"Book", "BreadcrumbList"},
			OptionalSchemas: []string{"Review", "AggregateRating", "Person", "Offer"},
		},
		{
			Name:            "music",
			URLPatterns:     []string{`/music/`, `/album/`, `/song/`, `/track/`, `/מוזיקה/`},
			ExpectedSchemas: []string{"MusicRecording", "BreadcrumbList"},
			OptionalSchemas: []string{"MusicAlbum", "MusicGroup", "Person"},
		},
		{
			Name:            "movie",
			URLPatterns:     []string{`/movie/`, `/film/`, `/סרט/`},
			ExpectedSchemas: []string{"Movie", "BreadcrumbList"},
			OptionalSchemas: []string{"Review", "AggregateRating", "Person", "VideoObject"},
		},

		// Careers
		{
			Name:            "job",
			URLPatterns:     []string{`/job/`, `/jobs/`, `/career/`, `/position/`, `/משרה/`, `/דרושים/`},
			ExpectedSchemas: []string{"JobPosting", "BreadcrumbList"},
			OptionalSchemas: []string{"Organization"},
		},
		{
			Name:            "careers_page",
			URLPatterns:     []string{`/careers/?$`, `/jobs/?$`, `/דרושים/?$`, `/קריירה/?$`},
			ExpectedSchemas: []string{"WebPage", "BreadcrumbList", "Organization"},
			OptionalSchemas: []string{"ItemList", "JobPosting"},
		},
	}
}
