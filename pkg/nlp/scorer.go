package nlp

import (
	"math"
	"strings"
)

type scorer struct{}

func NewScorer() IScorer {
	return &scorer{}
}

// Evaluate computes three scores for a transcript: the share of expected
// keywords it mentions, its similarity to the sample answer, and a novelty
// score that rewards answers that are lexically varied and not a recitation
// of the sample.
func (s *scorer) Evaluate(transcript string, keywords []string, sampleAnswer string) Evaluation {
	transcript = strings.ToLower(transcript)

	if strings.TrimSpace(transcript) == "" {
		missing := make([]string, len(keywords))
		copy(missing, keywords)
		return Evaluation{
			Keywords:        keywords,
			MissingKeywords: missing,
		}
	}

	hits := 0
	missing := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.Contains(transcript, strings.ToLower(keyword)) {
			hits++
		} else {
			missing = append(missing, keyword)
		}
	}

	matchScore := 0
	if len(keywords) > 0 {
		matchScore = int(float64(hits) / float64(len(keywords)) * 100)
	}

	sampleSimilarity := similarityRatio(transcript, strings.ToLower(sampleAnswer))

	tokens := tokenize(transcript)
	unique := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		unique[token] = true
	}
	lexicalDiversity := float64(len(unique)) / math.Max(float64(len(tokens)), 1)
	novelty := ((1-sampleSimilarity)*0.5 + math.Min(1, lexicalDiversity)*0.5) * 100

	return Evaluation{
		MatchScore:      matchScore,
		SampleScore:     int(sampleSimilarity * 100),
		NoveltyScore:    int(novelty),
		Keywords:        keywords,
		MissingKeywords: missing,
		SampleAnswer:    sampleAnswer,
	}
}
