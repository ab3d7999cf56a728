package nlp

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tadeasf/czech-nlp/internal/nlp/czech"
)

// minStemLen is the shortest stem (in runes) the suffix stripper may leave.
const minStemLen = 3

// Preprocessor normalizes raw Czech text: tokenize, drop stopwords and
// non-alphabetic tokens, lowercase, lemmatize. Output token order follows
// input order; a text whose tokens are all filtered yields "".
type Preprocessor struct {
	stopwords  map[string]struct{}
	exceptions map[string]string
	suffixes   []string
}

func NewPreprocessor(res *czech.Resources) *Preprocessor {
	stops := make(map[string]struct{}, len(res.Stopwords))
	for _, w := range res.Stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}

	suffixes := make([]string, len(res.LemmaSuffixes))
	copy(suffixes, res.LemmaSuffixes)
	sort.Slice(suffixes, func(i, j int) bool {
		return utf8.RuneCountInString(suffixes[i]) > utf8.RuneCountInString(suffixes[j])
	})

	return &Preprocessor{
		stopwords:  stops,
		exceptions: res.LemmaExceptions,
		suffixes:   suffixes,
	}
}

// Clean preprocesses each text independently. Same length and order out
// as in.
func (p *Preprocessor) Clean(texts []string) []string {
	cleaned := make([]string, len(texts))
	for i, text := range texts {
		cleaned[i] = p.CleanText(text)
	}
	return cleaned
}

func (p *Preprocessor) CleanText(text string) string {
	var out []string
	for _, token := range tokenize(text) {
		if !isAlphabetic(token) {
			continue
		}
		word := strings.ToLower(token)
		if _, ok := p.stopwords[word]; ok {
			continue
		}
		out = append(out, p.Lemmatize(word))
	}
	return strings.Join(out, " ")
}

// Lemmatize looks the word up in the exception table first, then falls
// back to light suffix stripping. Stripping repeats until no case ending
// matches, so every output is a fixed point of Lemmatize.
func (p *Preprocessor) Lemmatize(word string) string {
	if lemma, ok := p.exceptions[word]; ok {
		return lemma
	}

	for {
		stripped, ok := p.stripSuffix(word)
		if !ok {
			return word
		}
		word = stripped
	}
}

func (p *Preprocessor) stripSuffix(word string) (string, bool) {
	for _, suffix := range p.suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, suffix)
		if utf8.RuneCountInString(stem) >= minStemLen {
			return stem, true
		}
	}
	return word, false
}

// tokenize splits on any rune that is neither a letter nor a digit.
// Digits stay inside tokens so mixed tokens like "covid19" are seen as a
// single token and later rejected as non-alphabetic, the way a linguistic
// tokenizer would treat them.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isAlphabetic(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return token != ""
}
