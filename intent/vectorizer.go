package intent

import (
	"errors"
	"math"
	"strings"
)

// vectorizer maps normalized text to TF-IDF weighted bag-of-words vectors.
// The vocabulary and IDF weights are fixed at fit time; transforms are
// read-only and safe for concurrent use.
type vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func fitVectorizer(docs []string) (*vectorizer, error) {
	if len(docs) == 0 {
		return nil, errors.New("no documents to fit")
	}

	vocabulary := make(map[string]int)
	docFrequency := make([]int, 0)

	for _, doc := range docs {
		seen := make(map[int]struct{})

		for _, token := range strings.Fields(doc) {
			idx, ok := vocabulary[token]
			if !ok {
				idx = len(vocabulary)
				vocabulary[token] = idx
				docFrequency = append(docFrequency, 0)
			}

			if _, counted := seen[idx]; !counted {
				docFrequency[idx]++
				seen[idx] = struct{}{}
			}
		}
	}

	if len(vocabulary) == 0 {
		return nil, errors.New("documents contain no tokens")
	}

	// smoothed IDF, so a term in every document still carries weight
	n := float64(len(docs))
	idf := make([]float64, len(vocabulary))
	for i, df := range docFrequency {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	return &vectorizer{
		vocabulary: vocabulary,
		idf:        idf,
	}, nil
}

// transform returns the L2-normalized TF-IDF vector for one document. Tokens
// outside the fitted vocabulary are ignored; a document with no known tokens
// yields the zero vector.
func (v *vectorizer) transform(doc string) []float64 {
	vec := make([]float64, len(v.vocabulary))

	for _, token := range strings.Fields(doc) {
		if idx, ok := v.vocabulary[token]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var sumSquares float64
	for _, x := range vec {
		sumSquares += x * x
	}

	if sumSquares > 0 {
		norm := 1 / math.Sqrt(sumSquares)
		for i := range vec {
			vec[i] *= norm
		}
	}

	return vec
}

// isZero reports whether the vector carries no signal at all.
func isZero(vec []float64) bool {
	for _, x := range vec {
		if x != 0 {
			return false
		}
	}

	return true
}
