package analysis

import (
	"slices"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

// Rule maps a metrics predicate to one suggestion.
type Rule struct {
	Name    string
	Applies func(domain.AnalysisMetrics) bool
	Message string
}

// rules is evaluated top to bottom; the order is the truncation priority.
var rules = []Rule{
	{
		Name:    "add_emoji",
		Applies: func(m domain.AnalysisMetrics) bool { return m.EmojiCount == 0 },
		Message: "Add 1–2 relevant emojis to make the post more visually engaging.",
	},
	{
		Name:    "limit_emoji",
		Applies: func(m domain.AnalysisMetrics) bool { return m.EmojiCount > 3 },
		Message: "Limit emojis to the 2–3 most relevant ones to keep the content professional.",
	},
	{
		Name:    "add_hashtags",
		Applies: func(m domain.AnalysisMetrics) bool { return m.HashtagCount == 0 },
		Message: "Include 2–3 targeted hashtags to improve reach and discoverability.",
	},
	{
		Name:    "reduce_hashtags",
		Applies: func(m domain.AnalysisMetrics) bool { return m.HashtagCount > 5 },
		Message: "Reduce the number of hashtags—using 2–4 well-chosen ones works best.",
	},
	{
		Name:    "ask_question",
		Applies: func(m domain.AnalysisMetrics) bool { return !m.HasQuestions },
		Message: "Try asking a question to spark conversations and boost engagement.",
	},
	{
		Name:    "expand",
		Applies: func(m domain.AnalysisMetrics) bool { return m.CharacterCount < shortTextChars },
		Message: "Expand your content slightly—short posts may not fully capture attention.",
	},
	{
		Name:    "shorten",
		Applies: func(m domain.AnalysisMetrics) bool { return m.CharacterCount > longTextChars },
		Message: "Consider shortening your post—concise messages usually perform better.",
	},
}

// Rules returns a copy of the suggestion table in priority order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// Suggest returns the messages of the first MaxSuggestions matching rules.
// The result is never nil.
func Suggest(m domain.AnalysisMetrics) []string {
	out := make([]string, 0, MaxSuggestions)
	for _, rule := range rules {
		if len(out) == MaxSuggestions {
			break
		}
		if rule.Applies(m) {
			out = append(out, rule.Message)
		}
	}
	return out
}
