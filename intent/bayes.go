package intent

import (
	"errors"
	"math"
)

// multinomialBayes is a multinomial Naive Bayes model over non-negative
// feature vectors, with Laplace smoothing. Classes keep their first-seen
// training order, and argmax keeps the first class on exact ties, so
// prediction is deterministic for a fixed corpus.
type multinomialBayes struct {
	classes       []Label
	logPrior      []float64
	logLikelihood [][]float64
}

func fitBayes(vectors [][]float64, labels []Label, alpha float64) (*multinomialBayes, error) {
	if len(vectors) == 0 || len(vectors) != len(labels) {
		return nil, errors.New("training vectors and labels are empty or mismatched")
	}

	if alpha <= 0 {
		return nil, errors.New("smoothing alpha must be positive")
	}

	featureCount := len(vectors[0])

	classIndex := make(map[Label]int)
	classes := make([]Label, 0)
	docCounts := make([]float64, 0)
	featureTotals := make([][]float64, 0)

	for i, label := range labels {
		idx, ok := classIndex[label]
		if !ok {
			idx = len(classes)
			classIndex[label] = idx
			classes = append(classes, label)
			docCounts = append(docCounts, 0)
			featureTotals = append(featureTotals, make([]float64, featureCount))
		}

		docCounts[idx]++
		for f, x := range vectors[i] {
			featureTotals[idx][f] += x
		}
	}

	totalDocs := float64(len(vectors))

	logPrior := make([]float64, len(classes))
	logLikelihood := make([][]float64, len(classes))

	for c := range classes {
		logPrior[c] = math.Log(docCounts[c] / totalDocs)

		classTotal := 0.0
		for _, x := range featureTotals[c] {
			classTotal += x
		}

		logLikelihood[c] = make([]float64, featureCount)
		for f := range logLikelihood[c] {
			logLikelihood[c][f] = math.Log((featureTotals[c][f] + alpha) / (classTotal + alpha*float64(featureCount)))
		}
	}

	return &multinomialBayes{
		classes:       classes,
		logPrior:      logPrior,
		logLikelihood: logLikelihood,
	}, nil
}

// predict returns the winning class and its posterior probability. The
// posterior comes from exp-normalizing the joint log scores, so it always
// lies in [0,1].
func (m *multinomialBayes) predict(vec []float64) (Label, float64) {
	scores := make([]float64, len(m.classes))

	for c := range m.classes {
		score := m.logPrior[c]
		for f, x := range vec {
			if x != 0 {
				score += x * m.logLikelihood[c][f]
			}
		}

		scores[c] = score
	}

	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}

	// log-sum-exp for a numerically stable posterior
	var total float64
	for _, score := range scores {
		total += math.Exp(score - scores[best])
	}

	return m.classes[best], 1 / total
}
