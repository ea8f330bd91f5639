package scraping

import (
	"math"
	"regexp"
	"strings"
)

// Dimension weights; they sum to 1.0.
const (
	weightWordCount      = 0.25
	weightLinkDensity    = 0.20
	weightBoilerplate    = 0.20
	weightContentDensity = 0.15
	weightSentenceLength = 0.20
)

// Boilerplate indicator phrases; each match estimates ~5% boilerplate.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)cookie\s+policy`),
	regexp.MustCompile(`(?i)privacy\s+policy`),
	regexp.MustCompile(`(?i)terms\s+(of\s+)?(service|use)`),
	regexp.MustCompile(`(?i)all\s+rights\s+reserved`),
	regexp.MustCompile(`(?i)subscribe\s+to\s+(our\s+)?newsletter`),
	regexp.MustCompile(`(?i)sign\s+up\s+for`),
	regexp.MustCompile(`(?i)follow\s+us\s+on`),
	regexp.MustCompile(`(?i)share\s+(this|on)`),
	regexp.MustCompile(`(?i)copyright\s+\d{4}`),
	regexp.MustCompile(`(?i)powered\s+by`),
}

var sentenceEnd = regexp.MustCompile(`[.!?]+(\s+|$)`)

// QualityMetrics carries the per-dimension and composite quality scores for
// one extracted page.
type QualityMetrics struct {
	WordCount      int     `json:"word_count"`
	WordCountScore float64 `json:"word_count_score"`

	LinkDensity      float64 `json:"link_density"`
	LinkDensityScore float64 `json:"link_density_score"`

	BoilerplateRatio float64 `json:"boilerplate_ratio"`
	BoilerplateScore float64 `json:"boilerplate_score"`

	ContentDensity      float64 `json:"content_density"`
	ContentDensityScore float64 `json:"content_density_score"`

	AvgSentenceLength   float64 `json:"avg_sentence_length"`
	SentenceLengthScore float64 `json:"sentence_length_score"`

	OverallScore float64 `json:"overall_score"`
}

// QualityScorer scores extracted content on word count, link density,
// boilerplate ratio, text-to-HTML density and sentence length.
type QualityScorer struct {
	minWords            int
	idealWords          int
	maxLinkDensity      float64
	idealSentenceLength float64
}

func NewQualityScorer() *QualityScorer {
	return &QualityScorer{
		minWords:            50,
		idealWords:          1500,
		maxLinkDensity:      0.4,
		idealSentenceLength: 20.0,
	}
}

// Score rates text on a [0,1] scale. rawHTML feeds the content-density
// dimension and linkText the link-density dimension; either may be empty.
func (s *QualityScorer) Score(text, rawHTML, linkText string) QualityMetrics {
	words := strings.Fields(text)
	wordCount := len(words)
	if wordCount == 0 {
		return QualityMetrics{}
	}
	// Fragments this short carry no signal worth weighting.
	if wordCount < 20 {
		return QualityMetrics{WordCount: wordCount, OverallScore: 0.1}
	}
	wordScore := s.scoreWordCount(wordCount)

	linkDensity := float64(len(linkText)) / math.Max(float64(len(text)), 1)
	linkScore := s.scoreLinkDensity(linkDensity)

	boilerplate := detectBoilerplate(text)
	boilerplateScore := math.Max(0, 1.0-boilerplate*2)

	contentDensity := 0.5
	if rawHTML != "" {
		contentDensity = float64(len(text)) / math.Max(float64(len(rawHTML)), 1)
	}
	contentDensityScore := math.Min(1.0, contentDensity*3)

	avgSentence := averageSentenceLength(text)
	sentenceScore := s.scoreSentenceLength(avgSentence)

	overall := weightWordCount*wordScore +
		weightLinkDensity*linkScore +
		weightBoilerplate*boilerplateScore +
		weightContentDensity*contentDensityScore +
		weightSentenceLength*sentenceScore

	return QualityMetrics{
		WordCount:           wordCount,
		WordCountScore:      round3(wordScore),
		LinkDensity:         round3(linkDensity),
		LinkDensityScore:    round3(linkScore),
		BoilerplateRatio:    round3(boilerplate),
		BoilerplateScore:    round3(boilerplateScore),
		ContentDensity:      round3(contentDensity),
		ContentDensityScore: round3(contentDensityScore),
		AvgSentenceLength:   math.Round(avgSentence*10) / 10,
		SentenceLengthScore: round3(sentenceScore),
		OverallScore:        round3(math.Min(math.Max(overall, 0), 1)),
	}
}

func (s *QualityScorer) scoreWordCount(wordCount int) float64 {
	if wordCount < s.minWords {
		return 0
	}
	return math.Min(1.0, float64(wordCount)/float64(s.idealWords))
}

// Lower link density is better; pages past the cap score zero.
func (s *QualityScorer) scoreLinkDensity(density float64) float64 {
	if density > s.maxLinkDensity {
		return 0
	}
	return 1.0 - density/s.maxLinkDensity
}

func (s *QualityScorer) scoreSentenceLength(avg float64) float64 {
	if avg == 0 {
		return 0
	}
	deviation := math.Abs(avg - s.idealSentenceLength)
	return math.Max(0, 1.0-deviation/s.idealSentenceLength)
}

func detectBoilerplate(text string) float64 {
	if text == "" {
		return 0
	}
	matches := 0
	for _, p := range boilerplatePatterns {
		if p.MatchString(text) {
			matches++
		}
	}
	return math.Min(1.0, float64(matches)*0.05)
}

func averageSentenceLength(text string) float64 {
	sentences := sentenceEnd.Split(text, -1)
	count := 0
	totalWords := 0
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if len(s) <= 3 {
			continue
		}
		count++
		totalWords += len(strings.Fields(s))
	}
	if count == 0 {
		return 0
	}
	return float64(totalWords) / float64(count)
}
