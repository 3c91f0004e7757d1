package knowledge

// defaultPlatforms is the authority-weight table for trust-signal checks,
// keyed by domain substring. Wikidata and Wikipedia weigh far more than
// ordinary social profiles.
func defaultPlatforms() map[string]Platform {
	return map[string]Platform{
		"facebook.com":   {Name: "Facebook", Weight: 3},
		"fb.com":         {Name: "Facebook", Weight: 3},
		"linkedin.com":   {Name: "LinkedIn", Weight: 5},
		"twitter.com":    {Name: "Twitter/X", Weight: 3},
		"x.com":          {Name: "Twitter/X", Weight: 3},
		"instagram.com":  {Name: "Instagram", Weight: 2},
		"youtube.com":    {Name: "YouTube", Weight: 4},
		"tiktok.com":     {Name: "TikTok", Weight: 2},
		"pinterest.com":  {Name: "Pinterest", Weight: 1},
		"github.com":     {Name: "GitHub", Weight: 4},
		"wikidata.org":   {Name: "Wikidata", Weight: 10},
		"wikipedia.org":  {Name: "Wikipedia", Weight: 8},
		"crunchbase.com": {Name: "Crunchbase", Weight: 6},
	}
}
