package nlp

// Evaluation grades a spoken-answer transcript against a question's expected
// keywords and sample answer. Scores are percentages in [0,100].
type Evaluation struct {
	MatchScore      int      `json:"match_score"`
	SampleScore     int      `json:"sample_score"`
	NoveltyScore    int      `json:"novelty_score"`
	Keywords        []string `json:"keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	SampleAnswer    string   `json:"sample_answer,omitempty"`
}

type IScorer interface {
	Evaluate(transcript string, keywords []string, sampleAnswer string) Evaluation
}
