// Package parsing provides text normalization and skill extraction for the screening pipeline.
package parsing

import (
	"regexp"
	"strings"
)

// stopWords are common grammatical words excluded from scoring and matching.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "that": {}, "the": {}, "to": {},
	"was": {}, "were": {}, "will": {}, "with": {},
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, strips punctuation, collapses whitespace, splits
// into words, drops stop words and stems each remaining token. Duplicates are
// retained; frequency matters for scoring. Empty input yields an empty slice.
func Normalize(text string) []string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if text == "" {
		return nil
	}

	words := strings.Split(text, " ")
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if _, stop := stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, Stem(word))
	}
	return tokens
}

// Stem applies a crude suffix-stripping transform: "ing" drops 3 characters,
// "ed" drops 2, a trailing "s" (but not "ss") drops 1. First match wins; no
// further stripping. There are deliberately no length guards, so "ing" stems
// to the empty string and "gas" stems to "ga". This is a matching heuristic,
// not a linguistic stemmer.
func Stem(word string) string {
	switch {
	case strings.HasSuffix(word, "ing"):
		return word[:len(word)-3]
	case strings.HasSuffix(word, "ed"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	}
	return word
}

// UniqueTokens deduplicates a token sequence while preserving first-seen order.
func UniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	return unique
}
