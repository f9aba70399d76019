// Package analysis scores plain text for social-media engagement.
//
// The score is a fixed formula over a handful of surface metrics; nothing here
// performs I/O or keeps state, so Analyze can be called concurrently.
package analysis

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

const (
	MinScore       = 30
	MaxScore       = 100
	MaxSuggestions = 4

	shortTextChars = 50
	longTextChars  = 300
)

type runeRange struct {
	lo, hi rune
}

// Ranges overlap on purpose: a face in U+1F600–1F64F also falls in
// U+1F300–1F9FF and counts once per range.
var emojiRanges = []runeRange{
	{0x1F300, 0x1F9FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F900, 0x1F9FF},
}

var (
	hashtagPattern      = regexp.MustCompile(`#\w+`)
	questionWordPattern = regexp.MustCompile(`(?i)\b(what|how|why|when|where|which|who)\b`)
)

// Analyzer adapts Analyze to ports.ContentAnalyzer.
type Analyzer struct{}

func NewAnalyzer() Analyzer { return Analyzer{} }

func (Analyzer) Analyze(text string) domain.AnalysisResult { return Analyze(text) }

// Analyze is total: every string, including "", yields a valid result.
func Analyze(text string) domain.AnalysisResult {
	metrics := Measure(text)
	return domain.AnalysisResult{
		OriginalText: text,
		Suggestions:  Suggest(metrics),
		Score:        Score(metrics),
		Metrics:      metrics,
	}
}

func Measure(text string) domain.AnalysisMetrics {
	return domain.AnalysisMetrics{
		CharacterCount: characterCount(text),
		WordCount:      len(strings.Fields(text)),
		EmojiCount:     countEmojis(text),
		HashtagCount:   len(hashtagPattern.FindAllStringIndex(text, -1)),
		HasQuestions:   strings.Contains(text, "?") || questionWordPattern.MatchString(text),
	}
}

// characterCount measures text in UTF-16 code units, the length users see
// reported by browser clients. Astral characters such as emoji count as two.
func characterCount(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func countEmojis(text string) int {
	count := 0
	for _, r := range text {
		for _, rng := range emojiRanges {
			if r >= rng.lo && r <= rng.hi {
				count++
			}
		}
	}
	return count
}

// Score clamps the weighted sum to [MinScore, MaxScore] and rounds it.
func Score(m domain.AnalysisMetrics) int {
	lengthScore := math.Min(100, float64(m.CharacterCount)/3)
	emojiScore := math.Min(20, float64(m.EmojiCount*5))
	hashtagScore := math.Min(20, float64(m.HashtagCount*7))
	questionScore := 0.0
	if m.HasQuestions {
		questionScore = 10
	}

	raw := lengthScore + emojiScore + hashtagScore + questionScore
	clamped := math.Max(MinScore, math.Min(MaxScore, raw))
	return int(math.Round(clamped))
}
