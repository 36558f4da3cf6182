package retrieval

import (
	"context"
	"strings"
	"unicode"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
)

// LexicalScorer scores by token overlap (Jaccard similarity) between the new
// question and each stored question. It needs no external service, which
// makes it the default when no LLM client is configured.
type LexicalScorer struct{}

func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

func (s *LexicalScorer) Score(ctx context.Context, question string, candidates []*model.QueryRecord) ([]float64, error) {
	queryTokens := tokenize(question)

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = jaccard(queryTokens, tokenize(c.Question))
	}

	return scores, nil
}

// tokenize lowercases, folds accents common in Spanish text, and splits on
// non-letter/non-digit runes.
func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[foldAccents(f)] = struct{}{}
	}
	return tokens
}

var accentFold = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u', 'ñ': 'n',
}

func foldAccents(s string) string {
	return strings.Map(func(r rune) rune {
		if folded, ok := accentFold[r]; ok {
			return folded
		}
		return r
	}, s)
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
