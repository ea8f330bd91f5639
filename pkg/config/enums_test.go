package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderTypeIsValid(t *testing.T) {
	assert.True(t, ProviderTypeAnthropic.IsValid())
	assert.True(t, ProviderTypeOpenAI.IsValid())
	assert.True(t, ProviderTypeGoogle.IsValid())
	assert.False(t, ProviderType("mistral").IsValid())
	assert.False(t, ProviderType("").IsValid())
}

func TestTierIsValid(t *testing.T) {
	assert.True(t, TierFast.IsValid())
	assert.True(t, TierSmart.IsValid())
	assert.True(t, TierStrategic.IsValid())
	assert.False(t, Tier("ultra").IsValid())
}

func TestSearchEnums(t *testing.T) {
	assert.True(t, SearchProviderTavily.IsValid())
	assert.True(t, SearchProviderSerper.IsValid())
	assert.True(t, SearchProviderSearxNG.IsValid())
	assert.False(t, SearchProvider("bing").IsValid())

	assert.True(t, SearchDepthBasic.IsValid())
	assert.True(t, SearchDepthAdvanced.IsValid())
	assert.False(t, SearchDepth("deep").IsValid())
}

func TestScrapeEngineIsValid(t *testing.T) {
	assert.True(t, ScrapeEngineArticle.IsValid())
	assert.True(t, ScrapeEngineRaw.IsValid())
	assert.False(t, ScrapeEngine("browser").IsValid())
}

func TestReportFormatIsValid(t *testing.T) {
	assert.True(t, ReportFormatMarkdown.IsValid())
	assert.True(t, ReportFormatHTML.IsValid())
	assert.False(t, ReportFormat("pdf").IsValid())
}

func TestTiersForTier(t *testing.T) {
	tiers := DefaultSettings().Tiers

	assert.Equal(t, []string{"claude-haiku-3-5-20241022", "gpt-4o-mini"}, tiers.ForTier(TierFast).Models)
	assert.Equal(t, int64(8192), tiers.ForTier(TierStrategic).MaxTokens)
	// Unknown tier falls back to smart
	assert.Equal(t, tiers.Smart.Models, tiers.ForTier(Tier("unknown")).Models)
}

func TestTierForNode(t *testing.T) {
	tiers := DefaultSettings().Tiers

	assert.Equal(t, TierSmart, tiers.TierForNode("plan"))
	assert.Equal(t, TierFast, tiers.TierForNode("search"))
	assert.Equal(t, TierFast, tiers.TierForNode("scrape"))
	assert.Equal(t, TierSmart, tiers.TierForNode("summarize"))
	assert.Equal(t, TierStrategic, tiers.TierForNode("synthesize"))
	// Unknown node falls back to smart
	assert.Equal(t, TierSmart, tiers.TierForNode("unknown-node"))
}
