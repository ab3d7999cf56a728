package nlp

import (
	"strings"

	"github.com/tadeasf/czech-nlp/internal/model"
	"github.com/tadeasf/czech-nlp/internal/nlp/czech"
)

// SentimentScorer is a deterministic lexicon-based scorer. Lexicon matching
// is substring-based rather than word-boundary-based, so a lexicon entry
// occurring inside a longer word still counts. That fuzziness is inherited
// behavior and callers depend on it; do not tighten it to word matching.
type SentimentScorer struct {
	positive []string
	negative []string
}

func NewSentimentScorer(res *czech.Resources) *SentimentScorer {
	return &SentimentScorer{
		positive: res.PositiveWords,
		negative: res.NegativeWords,
	}
}

// Score rates a single text. Word count is taken from the text as passed
// in, whitespace-split, with no further normalization.
func (s *SentimentScorer) Score(text string) model.SentimentResult {
	lower := strings.ToLower(text)

	positiveCount := 0
	for _, word := range s.positive {
		if strings.Contains(lower, word) {
			positiveCount++
		}
	}

	negativeCount := 0
	for _, word := range s.negative {
		if strings.Contains(lower, word) {
			negativeCount++
		}
	}

	totalWords := len(strings.Fields(text))
	if totalWords == 0 {
		return model.SentimentResult{
			Sentiment:    model.SentimentNeutral,
			Confidence:   0.5,
			Polarity:     0.0,
			Subjectivity: 0.0,
		}
	}

	polarity := float64(positiveCount-negativeCount) / float64(totalWords)

	sentiment := model.SentimentNeutral
	confidence := 0.5
	switch {
	case polarity > 0.01:
		sentiment = model.SentimentPositive
		confidence = min(0.9, abs(polarity)*10)
	case polarity < -0.01:
		sentiment = model.SentimentNegative
		confidence = min(0.9, abs(polarity)*10)
	}

	subjectivity := min(1.0, float64(positiveCount+negativeCount)/float64(totalWords))

	return model.SentimentResult{
		Sentiment:    sentiment,
		Confidence:   confidence,
		Polarity:     polarity,
		Subjectivity: subjectivity,
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
