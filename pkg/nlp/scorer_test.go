package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateKeywordMatching(t *testing.T) {
	s := NewScorer()

	result := s.Evaluate(
		"My experience includes three years of backend work and strong skills",
		[]string{"experience", "background", "skills"},
		"I am a software engineer with experience.",
	)

	assert.Equal(t, 66, result.MatchScore)
	assert.Equal(t, []string{"background"}, result.MissingKeywords)
	assert.Equal(t, []string{"experience", "background", "skills"}, result.Keywords)
}

func TestEvaluateKeywordsAreCaseInsensitive(t *testing.T) {
	s := NewScorer()

	result := s.Evaluate(
		"TEAMWORK matters most",
		[]string{"Teamwork"},
		"",
	)

	assert.Equal(t, 100, result.MatchScore)
	assert.Empty(t, result.MissingKeywords)
}

func TestEvaluateEmptyTranscript(t *testing.T) {
	s := NewScorer()

	result := s.Evaluate("   ", []string{"goals", "career"}, "Sample answer.")

	assert.Equal(t, 0, result.MatchScore)
	assert.Equal(t, 0, result.SampleScore)
	assert.Equal(t, 0, result.NoveltyScore)
	assert.Equal(t, []string{"goals", "career"}, result.MissingKeywords)
	assert.Empty(t, result.SampleAnswer)
}

func TestEvaluateRecitedSampleScoresLowNovelty(t *testing.T) {
	s := NewScorer()

	sample := "I admire this company's mission and I want to contribute."
	recited := s.Evaluate(sample, []string{"company"}, sample)
	original := s.Evaluate(
		"Growth opportunities and interesting problems drew me here.",
		[]string{"company"}, sample,
	)

	assert.Equal(t, 100, recited.SampleScore)
	assert.Less(t, recited.NoveltyScore, original.NoveltyScore)
	assert.Equal(t, sample, recited.SampleAnswer)
}

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
		delta    float64
	}{
		{
			name:     "identical after normalization",
			a:        "Hello, World!",
			b:        "hello world",
			expected: 1.0,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 0.0,
		},
		{
			name:     "containment uses length ratio",
			a:        "the quick brown fox",
			b:        "quick brown",
			expected: 11.0 / 19.0,
			delta:    0.001,
		},
		{
			name:     "disjoint strings score near zero",
			a:        "aaaa",
			b:        "zzzz",
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarityRatio(tt.a, tt.b)
			if tt.delta > 0 {
				assert.InDelta(t, tt.expected, got, tt.delta)
			} else {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCleanTextStripsAccentsAndPunctuation(t *testing.T) {
	assert.Equal(t, "resume and cafe", cleanText("Résumé, and café!"))
	assert.Equal(t, "a b c", cleanText("  a   b\tc "))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "two"}, tokenize("One, two; TWO."))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("abc", "abc"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 1, levenshteinDistance("kitten", "mitten"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}
