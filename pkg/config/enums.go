package config

// ProviderType defines supported LLM providers
type ProviderType string

const (
	// ProviderTypeAnthropic uses the Anthropic Messages API
	ProviderTypeAnthropic ProviderType = "anthropic"
	// ProviderTypeOpenAI uses the OpenAI Chat Completions API
	ProviderTypeOpenAI ProviderType = "openai"
	// ProviderTypeGoogle uses the Google Gemini API
	ProviderTypeGoogle ProviderType = "google"
)

// IsValid checks if the provider type is valid
func (t ProviderType) IsValid() bool {
	return t == ProviderTypeAnthropic || t == ProviderTypeOpenAI || t == ProviderTypeGoogle
}

// Tier defines a model capability/cost class used by the tier router.
// Nodes are mapped to tiers so cheap mechanical steps never pay for
// frontier-model pricing.
type Tier string

const (
	// TierFast routes to small/cheap models (search expansion, scraping hints)
	TierFast Tier = "fast"
	// TierSmart routes to mid-range models (planning, summarization)
	TierSmart Tier = "smart"
	// TierStrategic routes to the strongest configured model with a raised
	// output token ceiling (final synthesis)
	TierStrategic Tier = "strategic"
)

// IsValid checks if the tier is valid
func (t Tier) IsValid() bool {
	return t == TierFast || t == TierSmart || t == TierStrategic
}

// SearchProvider defines supported web search backends
type SearchProvider string

const (
	// SearchProviderTavily uses the Tavily search API
	SearchProviderTavily SearchProvider = "tavily"
	// SearchProviderSerper uses the Serper.dev Google proxy
	SearchProviderSerper SearchProvider = "serper"
	// SearchProviderSearxNG uses a self-hosted SearxNG instance
	SearchProviderSearxNG SearchProvider = "searxng"
)

// IsValid checks if the search provider is valid
func (p SearchProvider) IsValid() bool {
	return p == SearchProviderTavily || p == SearchProviderSerper || p == SearchProviderSearxNG
}

// SearchDepth controls how aggressive the search backend crawl is
type SearchDepth string

const (
	// SearchDepthBasic requests fast, shallow results
	SearchDepthBasic SearchDepth = "basic"
	// SearchDepthAdvanced requests deeper crawling with content snippets
	SearchDepthAdvanced SearchDepth = "advanced"
)

// IsValid checks if the search depth is valid
func (d SearchDepth) IsValid() bool {
	return d == SearchDepthBasic || d == SearchDepthAdvanced
}

// ScrapeEngine defines the content extraction strategy
type ScrapeEngine string

const (
	// ScrapeEngineArticle extracts main article text from the HTML tree
	ScrapeEngineArticle ScrapeEngine = "article"
	// ScrapeEngineRaw keeps the sanitized body text without article heuristics
	ScrapeEngineRaw ScrapeEngine = "raw"
)

// IsValid checks if the scrape engine is valid
func (e ScrapeEngine) IsValid() bool {
	return e == ScrapeEngineArticle || e == ScrapeEngineRaw
}

// ReportFormat defines the output format for final reports
type ReportFormat string

const (
	// ReportFormatMarkdown writes plain Markdown files
	ReportFormatMarkdown ReportFormat = "markdown"
	// ReportFormatHTML writes rendered HTML alongside the Markdown
	ReportFormatHTML ReportFormat = "html"
)

// IsValid checks if the report format is valid
func (f ReportFormat) IsValid() bool {
	return f == ReportFormatMarkdown || f == ReportFormatHTML
}
