package intent

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"interview-voice-assistant/normalizer"
)

type classifierImpl struct {
	normalizer normalizer.Interface
	vectorizer *vectorizer
	model      *multinomialBayes
	logger     *logrus.Logger
}

type Config struct {
	// Training overrides the seed corpus. Leave nil for the default set.
	Training []TrainingExample

	// Alpha is the Laplace smoothing factor. Zero means the default of 1.
	Alpha float64

	Logger *logrus.Logger
}

// New fits the TF-IDF vocabulary and the Naive Bayes model over the training
// corpus. A corpus the model cannot be built from is a construction-time
// fault: there is no safe fallback intent model, so the error is returned and
// the pipeline must not come up. The returned classifier is immutable and
// safe for concurrent use.
func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	training := cfg.Training
	if training == nil {
		training = DefaultTrainingSet()
	}

	alpha := cfg.Alpha
	if alpha == 0 {
		alpha = 1
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	norm := normalizer.New()

	docs := make([]string, 0, len(training))
	labels := make([]Label, 0, len(training))

	for _, example := range training {
		docs = append(docs, norm.Normalize(example.Text))
		labels = append(labels, example.Label)
	}

	vec, err := fitVectorizer(docs)
	if err != nil {
		return nil, fmt.Errorf("fitting vectorizer: %w", err)
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = vec.transform(doc)
	}

	model, err := fitBayes(vectors, labels, alpha)
	if err != nil {
		return nil, fmt.Errorf("fitting model: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"examples": len(training),
		"vocab":    len(vec.vocabulary),
		"classes":  len(model.classes),
	}).Debug("intent model trained")

	return &classifierImpl{
		normalizer: norm,
		vectorizer: vec,
		model:      model,
		logger:     logger,
	}, nil
}

// Classify maps one utterance to a command label with a posterior
// confidence. Empty or un-vectorizable input resolves to unknown with
// confidence zero rather than an error; a single garbled utterance must never
// fault the caller.
func (c *classifierImpl) Classify(text string) Command {
	cleaned := c.normalizer.Normalize(text)

	command := Command{
		Label:      LabelUnknown,
		Confidence: 0,
		RawText:    text,
		Parameters: map[string]string{},
	}

	if cleaned == "" {
		return command
	}

	vec := c.vectorizer.transform(cleaned)
	if isZero(vec) {
		return command
	}

	predicted, confidence := c.model.predict(vec)

	command.Label = ParseLabel(string(predicted))
	command.Confidence = confidence
	command.Parameters = ExtractParameters(cleaned, command.Label)

	c.logger.WithFields(logrus.Fields{
		"label":      command.Label,
		"confidence": fmt.Sprintf("%.2f", confidence),
	}).Debug("classified utterance")

	return command
}
