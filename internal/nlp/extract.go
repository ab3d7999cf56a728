package nlp

import (
	"strings"

	"github.com/tadeasf/czech-nlp/internal/model"
)

// ExtractTexts flattens each document into a single analysis string:
// title, then description, then content, joined by single spaces. Absent
// fields are skipped. The semantic path passes includeContent=false and
// analyzes title+description only.
func ExtractTexts(docs []model.Document, includeContent bool) []string {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		parts := []string{doc.Title}
		if doc.Description != "" {
			parts = append(parts, doc.Description)
		}
		if includeContent && doc.Content != "" {
			parts = append(parts, doc.Content)
		}
		texts[i] = strings.Join(parts, " ")
	}
	return texts
}
