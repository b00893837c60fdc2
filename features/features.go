package features

import (
	"strings"
	"sync"
	"time"

	"interview-voice-assistant/normalizer"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// Set holds the auxiliary descriptors computed for one utterance. It is
// purely derived data with no references back into the pipeline.
type Set struct {
	CharLength      int
	WordCount       int
	HasQuestionWord bool
	Sentiment       Sentiment
	Complexity      Complexity
	Keywords        []string
	AudioLength     int
	HasAudio        bool
	CapturedAt      time.Time
}

var questionWords = []string{"what", "how", "why", "when", "where", "which", "who"}

var positiveWords = []string{"good", "great", "excellent", "amazing", "wonderful", "perfect"}

var negativeWords = []string{"bad", "terrible", "awful", "horrible", "wrong", "incorrect"}

type extractorImpl struct {
	keywords normalizer.Interface

	mu      sync.Mutex
	history []Set
}

func New() Interface {
	return &extractorImpl{
		keywords: normalizer.New(),
	}
}

// Extract computes the feature set for an utterance. Audio analysis is the
// capture layer's job; an attached blob only contributes its byte length and
// a presence flag. Every result is appended to the extractor's history, which
// grows unbounded until the extractor is discarded.
func (e *extractorImpl) Extract(text string, audioData []byte) Set {
	set := Set{
		CharLength:      len(text),
		WordCount:       len(strings.Fields(text)),
		HasQuestionWord: hasQuestionWord(text),
		Sentiment:       analyzeSentiment(text),
		Complexity:      analyzeComplexity(text),
		Keywords:        e.keywords.ExtractKeywords(text),
		CapturedAt:      time.Now(),
	}

	if len(audioData) > 0 {
		set.AudioLength = len(audioData)
		set.HasAudio = true
	}

	e.mu.Lock()
	e.history = append(e.history, set)
	e.mu.Unlock()

	return set
}

// History returns a snapshot of every feature set extracted so far.
func (e *extractorImpl) History() []Set {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Set, len(e.history))
	copy(out, e.history)

	return out
}

func hasQuestionWord(text string) bool {
	lower := strings.ToLower(text)

	for _, word := range strings.Fields(lower) {
		for _, q := range questionWords {
			if word == q {
				return true
			}
		}
	}

	return false
}

func analyzeSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	positive := 0
	negative := 0

	for _, word := range strings.Fields(lower) {
		for _, p := range positiveWords {
			if word == p {
				positive++
			}
		}

		for _, n := range negativeWords {
			if word == n {
				negative++
			}
		}
	}

	if positive > negative {
		return SentimentPositive
	}

	if negative > positive {
		return SentimentNegative
	}

	return SentimentNeutral
}

// analyzeComplexity tiers the utterance by word count and average word
// length. Rules are evaluated in order and the first match wins.
func analyzeComplexity(text string) Complexity {
	words := strings.Fields(text)
	wordCount := len(words)

	avgWordLength := 0.0
	if wordCount > 0 {
		total := 0
		for _, word := range words {
			total += len(word)
		}

		avgWordLength = float64(total) / float64(wordCount)
	}

	if wordCount < 5 || avgWordLength < 4 {
		return ComplexitySimple
	}

	if wordCount < 15 && avgWordLength < 6 {
		return ComplexityModerate
	}

	return ComplexityComplex
}
