package normalizer

import (
	"regexp"
	"strings"
)

var (
	fillerPattern      = regexp.MustCompile(`\b(um|uh|er|ah|like|you know|basically|actually)\b`)
	punctuationPattern = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// keywordVocabulary holds the interview-control words and technical terms
// kept by ExtractKeywords. Everything else is dropped.
var keywordVocabulary = map[string]struct{}{
	// interview control
	"start": {}, "begin": {}, "interview": {}, "question": {}, "questions": {},
	"next": {}, "repeat": {}, "evaluate": {}, "answer": {}, "end": {},
	"finish": {}, "help": {}, "assistance": {},
	// technical terms
	"python": {}, "java": {}, "javascript": {}, "react": {}, "node": {},
	"database": {}, "sql": {}, "algorithm": {}, "algorithms": {},
	"frontend": {}, "backend": {}, "ai": {},
}

type normalizerImpl struct{}

func New() Interface {
	return &normalizerImpl{}
}

// Normalize lower-cases the utterance, strips filler words and punctuation,
// and collapses whitespace. It is a pure function and never fails; any input,
// including the empty string, yields a valid (possibly empty) string.
func (n *normalizerImpl) Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(strings.TrimSpace(text))

	text = fillerPattern.ReplaceAllString(text, " ")
	text = punctuationPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// ExtractKeywords tokenizes the normalized utterance on whitespace and keeps
// only tokens present in the keyword vocabulary. Input order is preserved and
// duplicates are kept, since later hinting logic cares about ordering.
func (n *normalizerImpl) ExtractKeywords(text string) []string {
	keywords := make([]string, 0)

	for _, word := range strings.Fields(n.Normalize(text)) {
		if _, ok := keywordVocabulary[word]; ok {
			keywords = append(keywords, word)
		}
	}

	return keywords
}
