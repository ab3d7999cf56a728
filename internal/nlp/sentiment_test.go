package nlp

import (
	"testing"

	"github.com/tadeasf/czech-nlp/internal/model"
	"github.com/tadeasf/czech-nlp/internal/nlp/czech"
)

func newTestScorer() *SentimentScorer {
	return NewSentimentScorer(czech.Default())
}

func TestScorePositive(t *testing.T) {
	scorer := newTestScorer()

	// 2 positive hits over 2 words: polarity 1.0, capped confidence
	result := scorer.Score("dobrý skvělý")

	if result.Sentiment != model.SentimentPositive {
		t.Errorf("expected positive, got %s", result.Sentiment)
	}
	if result.Polarity != 1.0 {
		t.Errorf("expected polarity 1.0, got %f", result.Polarity)
	}
	if result.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %f", result.Confidence)
	}
	if result.Subjectivity != 1.0 {
		t.Errorf("expected subjectivity 1.0, got %f", result.Subjectivity)
	}
}

func TestScoreNegative(t *testing.T) {
	scorer := newTestScorer()

	result := scorer.Score("špatný problém")

	if result.Sentiment != model.SentimentNegative {
		t.Errorf("expected negative, got %s", result.Sentiment)
	}
	if result.Polarity != -1.0 {
		t.Errorf("expected polarity -1.0, got %f", result.Polarity)
	}
	if result.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %f", result.Confidence)
	}
}

func TestScoreEmptyText(t *testing.T) {
	scorer := newTestScorer()

	result := scorer.Score("")

	if result.Sentiment != model.SentimentNeutral {
		t.Errorf("expected neutral, got %s", result.Sentiment)
	}
	if result.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", result.Confidence)
	}
	if result.Polarity != 0.0 || result.Subjectivity != 0.0 {
		t.Errorf("expected zero polarity and subjectivity, got %f / %f", result.Polarity, result.Subjectivity)
	}
}

func TestScoreBalancedCountsAreNeutral(t *testing.T) {
	scorer := newTestScorer()

	result := scorer.Score("dobrý špatný")

	if result.Sentiment != model.SentimentNeutral {
		t.Errorf("expected neutral, got %s", result.Sentiment)
	}
	if result.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", result.Confidence)
	}
	if result.Polarity != 0.0 {
		t.Errorf("expected polarity 0.0, got %f", result.Polarity)
	}
	if result.Subjectivity != 1.0 {
		t.Errorf("expected subjectivity 1.0, got %f", result.Subjectivity)
	}
}

func TestScoreNeutralBelowThreshold(t *testing.T) {
	scorer := newTestScorer()

	// one hit over 150 words: polarity ~0.0067, inside the neutral band
	text := "dobrý"
	for i := 0; i < 149; i++ {
		text += " slovo"
	}

	result := scorer.Score(text)

	if result.Sentiment != model.SentimentNeutral {
		t.Errorf("expected neutral, got %s", result.Sentiment)
	}
	if result.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", result.Confidence)
	}
}

func TestScoreMatchesSubstrings(t *testing.T) {
	scorer := newTestScorer()

	// lexicon matching is substring-based: "dobrý" inside a longer word
	// still counts
	result := scorer.Score("dobrýtrend pokračuje")

	if result.Sentiment != model.SentimentPositive {
		t.Errorf("expected positive from substring match, got %s", result.Sentiment)
	}
}
