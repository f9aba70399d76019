package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

func containsMatch(suggestions []string, fragment string) bool {
	for _, s := range suggestions {
		if strings.Contains(strings.ToLower(s), strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}

func TestAnalyzeEmptyString(t *testing.T) {
	req := require.New(t)

	result := Analyze("")

	req.Equal(30, result.Score)
	req.Equal(0, result.Metrics.CharacterCount)
	req.Equal(0, result.Metrics.WordCount)
	req.Len(result.Suggestions, 4)
	for _, fragment := range []string{"emoji", "hashtag", "question", "expand"} {
		req.Truef(containsMatch(result.Suggestions, fragment), "missing %q suggestion in %v", fragment, result.Suggestions)
	}
}

func TestAnalyzeShortPlainPost(t *testing.T) {
	req := require.New(t)

	result := Analyze("Hello world")

	req.Equal(0, result.Metrics.EmojiCount)
	req.Equal(0, result.Metrics.HashtagCount)
	req.False(result.Metrics.HasQuestions)
	req.Equal(2, result.Metrics.WordCount)
	for _, fragment := range []string{"emoji", "hashtag", "question", "expand"} {
		req.Truef(containsMatch(result.Suggestions, fragment), "missing %q suggestion in %v", fragment, result.Suggestions)
	}
}

func TestAnalyzeTooManyHashtags(t *testing.T) {
	req := require.New(t)

	result := Analyze("Check this out! #one #two #three #four #five #six")

	req.Equal(6, result.Metrics.HashtagCount)
	req.True(containsMatch(result.Suggestions, "reduce the number of hashtags"))
	req.LessOrEqual(len(result.Suggestions), MaxSuggestions)
}

func TestAnalyzeQuestionSuppressesConversationPrompt(t *testing.T) {
	req := require.New(t)

	result := Analyze("What do you think about remote work?")

	req.True(result.Metrics.HasQuestions)
	req.False(containsMatch(result.Suggestions, "spark conversations"))
}

func TestAnalyzeQuestionWordWithoutQuestionMark(t *testing.T) {
	result := Analyze("Tell me HOW you plan your week")
	require.True(t, result.Metrics.HasQuestions)
}

func TestAnalyzeQuestionWordsMatchWholeWordsOnly(t *testing.T) {
	result := Analyze("somewhat whoever without")
	require.False(t, result.Metrics.HasQuestions)
}

func TestAnalyzeVeryLongPost(t *testing.T) {
	req := require.New(t)

	result := Analyze(strings.Repeat("Lorem ipsum ", 40))

	req.True(containsMatch(result.Suggestions, "shortening your post"))
	req.LessOrEqual(result.Score, 100)
	req.Equal(100, result.Score)
}

func TestAnalyzeBalancedPost(t *testing.T) {
	req := require.New(t)

	result := Analyze("Excited to share my new project! What features would you like to see? #tech #innovation")

	req.Equal(0, result.Metrics.EmojiCount)
	req.Equal(2, result.Metrics.HashtagCount)
	req.True(result.Metrics.HasQuestions)
	req.LessOrEqual(len(result.Suggestions), MaxSuggestions)
	req.True(containsMatch(result.Suggestions, "emoji"))
	req.Equal(53, result.Score)
}

func TestAnalyzeOnlyHashtags(t *testing.T) {
	req := require.New(t)

	result := Analyze("#only #hashtags #here")

	req.Equal(3, result.Metrics.HashtagCount)
	req.Equal([]string{
		"Add 1–2 relevant emojis to make the post more visually engaging.",
		"Try asking a question to spark conversations and boost engagement.",
		"Expand your content slightly—short posts may not fully capture attention.",
	}, result.Suggestions)
}

func TestCountEmojisCountsOverlappingRangesIndependently(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "party popper in misc symbols and pictographs", text: "\U0001F389", want: 1},
		{name: "face counted in two ranges", text: "\U0001F600", want: 2},
		{name: "rocket counted in two ranges", text: "\U0001F680", want: 2},
		{name: "robot counted in two ranges", text: "\U0001F916", want: 2},
		{name: "sun in misc symbols", text: "\u2600", want: 1},
		{name: "check mark in dingbats", text: "\u2705", want: 1},
		{name: "plain ascii", text: "no emoji here :)", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, countEmojis(tt.text))
		})
	}
}

func TestAnalyzeTooManyEmojis(t *testing.T) {
	req := require.New(t)

	result := Analyze("\U0001F600\U0001F600\U0001F600 launch day")

	req.Equal(6, result.Metrics.EmojiCount)
	req.True(containsMatch(result.Suggestions, "limit emojis"))
	req.False(containsMatch(result.Suggestions, "add 1–2"))
}

func TestAnalyzeCharacterCountUsesUTF16Units(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "latin with accents", text: "h\u00e9llo w\u00f6rld", want: 11},
		{name: "astral emoji counts twice", text: "\U0001F600", want: 2},
		{name: "bmp symbol counts once", text: "\u2600", want: 1},
		{name: "invalid utf-8 byte counts once", text: "a\xffb", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Analyze(tt.text).Metrics.CharacterCount)
		})
	}
}

func TestAnalyzeEmojiOnlyPostReachesExpandThreshold(t *testing.T) {
	req := require.New(t)

	result := Analyze(strings.Repeat("\U0001F600", 25))

	req.Equal(50, result.Metrics.CharacterCount)
	req.Equal(37, result.Score)
	req.False(containsMatch(result.Suggestions, "expand"))
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"a",
		strings.Repeat("😀🚀🤖 #tag #more what? ", 500),
		strings.Repeat("#x", 1000),
		strings.Repeat(" ", 10_000),
	}
	for _, input := range inputs {
		result := Analyze(input)
		require.GreaterOrEqual(t, result.Score, MinScore)
		require.LessOrEqual(t, result.Score, MaxScore)
		require.LessOrEqual(t, len(result.Suggestions), MaxSuggestions)
	}
}

func TestScoreRoundsClampedSum(t *testing.T) {
	tests := []struct {
		name    string
		metrics domain.AnalysisMetrics
		want    int
	}{
		{name: "floor", metrics: domain.AnalysisMetrics{}, want: 30},
		{name: "length only", metrics: domain.AnalysisMetrics{CharacterCount: 200}, want: 67},
		{name: "emoji capped at 20", metrics: domain.AnalysisMetrics{CharacterCount: 150, EmojiCount: 10}, want: 70},
		{name: "hashtags capped at 20", metrics: domain.AnalysisMetrics{CharacterCount: 150, HashtagCount: 4}, want: 70},
		{name: "question bonus", metrics: domain.AnalysisMetrics{CharacterCount: 150, HasQuestions: true}, want: 60},
		{name: "ceiling", metrics: domain.AnalysisMetrics{CharacterCount: 600, EmojiCount: 4, HashtagCount: 3, HasQuestions: true}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Score(tt.metrics))
		})
	}
}

func TestRulesKeepPriorityOrder(t *testing.T) {
	names := make([]string, 0, len(Rules()))
	for _, rule := range Rules() {
		names = append(names, rule.Name)
	}
	require.Equal(t, []string{
		"add_emoji",
		"limit_emoji",
		"add_hashtags",
		"reduce_hashtags",
		"ask_question",
		"expand",
		"shorten",
	}, names)
}

func TestSuggestNeverReturnsNil(t *testing.T) {
	metrics := domain.AnalysisMetrics{CharacterCount: 120, EmojiCount: 2, HashtagCount: 3, HasQuestions: true}
	suggestions := Suggest(metrics)
	require.NotNil(t, suggestions)
	require.Empty(t, suggestions)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	text := "Big news 🚀 what do you think? #launch #product"

	first, err := json.Marshal(Analyze(text))
	require.NoError(t, err)
	second, err := json.Marshal(Analyze(text))
	require.NoError(t, err)

	require.Equal(t, string(first), string(second))
}
