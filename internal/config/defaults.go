package config

// Defaults for the stock site.
const (
	DefaultName            = "CPA with AI"
	DefaultBaseURL         = "https://cpawith.ai"
	DefaultHomeTitle       = "CPA with AI — Earn CPE credits building real automation"
	DefaultHomeDescription = "Tutorials, courses, and CPE credits for accountants who want to build with Python and AI. Written by a CPA turned software engineer at Amazon."
	DefaultFeedDescription = "Tutorials and CPE credits for accountants who build with Python and AI."
	DefaultDomain          = "cpawith.ai"

	DefaultContentDir   = "content/posts"
	DefaultTemplatesDir = "templates"
	DefaultStaticDir    = "static"
	DefaultOutputDir    = "out"

	DefaultFeedMaxItems     = 20
	DefaultSitemapNamespace = "http://www.sitemapindex.org/schemas/sitemap/0.9"
)

// DefaultLLMSSummary is the blockquote under the llms.txt heading.
var DefaultLLMSSummary = []string{
	"Tutorials, courses, and CPE credits for accountants who build with Python and AI.",
	"Written by Daniel Butler — CPA turned software engineer at Amazon.",
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.Site.Name, DefaultName)
	setDefault(&cfg.Site.BaseURL, DefaultBaseURL)
	setDefault(&cfg.Site.HomeTitle, DefaultHomeTitle)
	setDefault(&cfg.Site.HomeDescription, DefaultHomeDescription)
	setDefault(&cfg.Site.FeedDescription, DefaultFeedDescription)
	setDefault(&cfg.Site.Domain, DefaultDomain)
	if len(cfg.Site.LLMSSummary) == 0 {
		cfg.Site.LLMSSummary = append([]string(nil), DefaultLLMSSummary...)
	}

	setDefault(&cfg.Paths.Content, DefaultContentDir)
	setDefault(&cfg.Paths.Templates, DefaultTemplatesDir)
	setDefault(&cfg.Paths.Static, DefaultStaticDir)
	setDefault(&cfg.Paths.Output, DefaultOutputDir)

	if cfg.Feed.MaxItems == 0 {
		cfg.Feed.MaxItems = DefaultFeedMaxItems
	}
	setDefault(&cfg.Sitemap.Namespace, DefaultSitemapNamespace)
}

func setDefault(field *string, def string) {
	if *field == "" {
		*field = def
	}
}
