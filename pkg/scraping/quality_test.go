package scraping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// article builds n plain sentences of ten words each.
func article(n int) string {
	var b strings.Builder
	for range n {
		b.WriteString("The study measured outcomes across several independent trial groups carefully. ")
	}
	return b.String()
}

func TestQualitySubstantiveArticle(t *testing.T) {
	s := NewQualityScorer()
	text := article(150) // 1500 words
	m := s.Score(text, "", "")

	assert.Equal(t, 1500, m.WordCount)
	assert.InDelta(t, 1.0, m.WordCountScore, 0.001)
	assert.InDelta(t, 1.0, m.LinkDensityScore, 0.001)
	assert.InDelta(t, 1.0, m.BoilerplateScore, 0.001)
	assert.Greater(t, m.OverallScore, 0.7)
}

func TestQualityTooShort(t *testing.T) {
	s := NewQualityScorer()
	m := s.Score("Only a handful of words here.", "", "")

	assert.Less(t, m.WordCount, 50)
	assert.Zero(t, m.WordCountScore)
}

func TestQualityLinkFarm(t *testing.T) {
	s := NewQualityScorer()
	text := article(60)
	// Over 40% of the characters are anchor text.
	linkText := text[:len(text)/2]
	m := s.Score(text, "", linkText)

	assert.Greater(t, m.LinkDensity, 0.4)
	assert.Zero(t, m.LinkDensityScore)
}

func TestQualityBoilerplateHeavy(t *testing.T) {
	s := NewQualityScorer()
	text := article(60) +
		" Cookie policy. Privacy policy. Terms of service. All rights reserved." +
		" Subscribe to our newsletter. Follow us on social media. Copyright 2024. Powered by CMS."

	m := s.Score(text, "", "")
	clean := s.Score(article(60), "", "")

	assert.Greater(t, m.BoilerplateRatio, 0.0)
	assert.Less(t, m.BoilerplateScore, clean.BoilerplateScore)
	assert.Less(t, m.OverallScore, clean.OverallScore)
}

func TestQualityContentDensity(t *testing.T) {
	s := NewQualityScorer()
	text := article(100)

	// Markup-heavy page: text is a sliver of the HTML.
	bloated := s.Score(text, text+strings.Repeat("<div class='wrap'></div>", 5000), "")
	lean := s.Score(text, "<html><body>"+text+"</body></html>", "")

	assert.Less(t, bloated.ContentDensityScore, lean.ContentDensityScore)
	assert.InDelta(t, 1.0, lean.ContentDensityScore, 0.001)
}

func TestQualityContentDensityDefaultsWithoutHTML(t *testing.T) {
	s := NewQualityScorer()
	m := s.Score(article(100), "", "")

	assert.InDelta(t, 0.5, m.ContentDensity, 0.001)
}

func TestQualitySentenceLength(t *testing.T) {
	s := NewQualityScorer()

	// Ten-word sentences sit halfway below the twenty-word ideal.
	m := s.Score(article(100), "", "")
	assert.InDelta(t, 10.0, m.AvgSentenceLength, 0.5)
	assert.InDelta(t, 0.5, m.SentenceLengthScore, 0.05)

	// No sentence terminators at all.
	flat := s.Score(strings.Repeat("word ", 100), "", "")
	assert.Zero(t, flat.SentenceLengthScore)
}

func TestQualityEmptyText(t *testing.T) {
	s := NewQualityScorer()
	m := s.Score("", "", "")

	assert.Zero(t, m.WordCount)
	assert.Zero(t, m.WordCountScore)
	assert.Zero(t, m.AvgSentenceLength)
}

func TestQualityOverallBounded(t *testing.T) {
	s := NewQualityScorer()
	for _, text := range []string{"", "short", article(10), article(200)} {
		m := s.Score(text, "<html>"+text+"</html>", "")
		assert.GreaterOrEqual(t, m.OverallScore, 0.0)
		assert.LessOrEqual(t, m.OverallScore, 1.0)
	}
}
