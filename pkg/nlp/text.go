package nlp

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cleanText lowercases, strips diacritics, and collapses punctuation to
// whitespace so that token comparison is accent- and case-insensitive.
func cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func tokenize(text string) []string {
	return strings.Fields(cleanText(text))
}

// similarityRatio returns a similarity in [0,1]: 1 for identical normalized
// strings, a length ratio for containment, and an edit-distance ratio
// otherwise.
func similarityRatio(text1, text2 string) float64 {
	norm1 := cleanText(text1)
	norm2 := cleanText(text2)

	if norm1 == norm2 {
		if norm1 == "" {
			return 0.0
		}
		return 1.0
	}

	if strings.Contains(norm1, norm2) || strings.Contains(norm2, norm1) {
		shorter, longer := norm1, norm2
		if len(norm1) > len(norm2) {
			shorter, longer = norm2, norm1
		}
		if len(longer) == 0 {
			return 0.0
		}
		return float64(len(shorter)) / float64(len(longer))
	}

	distance := levenshteinDistance(norm1, norm2)
	maxLen := math.Max(float64(len(norm1)), float64(len(norm2)))
	return math.Max(0, 1.0-float64(distance)/maxLen)
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = minOf(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func minOf(a, b, c int) int {
	if a < b && a < c {
		return a
	} else if b < c {
		return b
	}
	return c
}
