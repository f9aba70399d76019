package domain

type AnalysisMetrics struct {
	CharacterCount int  `json:"characterCount"`
	WordCount      int  `json:"wordCount"`
	EmojiCount     int  `json:"emojiCount"`
	HashtagCount   int  `json:"hashtagCount"`
	HasQuestions   bool `json:"hasQuestions"`
}

// AnalysisResult is the terminal artifact of a pipeline run. Score is in [30,100]
// and Suggestions holds at most four entries.
type AnalysisResult struct {
	OriginalText string          `json:"originalText"`
	Suggestions  []string        `json:"suggestions"`
	Score        int             `json:"score"`
	Metrics      AnalysisMetrics `json:"metrics"`
}
