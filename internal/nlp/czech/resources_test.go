package czech

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultResources(t *testing.T) {
	res := Default()

	if len(res.PositiveWords) != 9 {
		t.Errorf("expected 9 positive words, got %d", len(res.PositiveWords))
	}
	if len(res.NegativeWords) != 8 {
		t.Errorf("expected 8 negative words, got %d", len(res.NegativeWords))
	}
	if len(res.Stopwords) == 0 {
		t.Error("expected non-empty stopword list")
	}

	for form, lemma := range res.LemmaExceptions {
		if got, ok := res.LemmaExceptions[lemma]; !ok || got != lemma {
			t.Errorf("lemma %q (from %q) must map to itself", lemma, form)
		}
	}
}

func TestLoadOverridesLexicons(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.yaml")
	content := "positive_words:\n  - super\nnegative_words:\n  - hrozný\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	res, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(res.PositiveWords) != 1 || res.PositiveWords[0] != "super" {
		t.Errorf("positive words not overridden: %v", res.PositiveWords)
	}
	if len(res.NegativeWords) != 1 || res.NegativeWords[0] != "hrozný" {
		t.Errorf("negative words not overridden: %v", res.NegativeWords)
	}
	if len(res.Stopwords) == 0 {
		t.Error("stopwords should keep defaults when not overridden")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("stopwords: {not a list"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
