package assistant

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"interview-voice-assistant/dispatch"
	"interview-voice-assistant/features"
	"interview-voice-assistant/intent"
	"interview-voice-assistant/normalizer"
)

type assistantImpl struct {
	normalizer normalizer.Interface
	classifier intent.Interface
	extractor  features.Interface
	dispatcher dispatch.Interface
	logger     *logrus.Logger
}

type Config struct {
	// Session drives the interview; nil degrades session commands to fixed
	// "not available" responses.
	Session dispatch.Session

	// Synthesizer speaks responses; nil disables speech output.
	Synthesizer dispatch.Synthesizer

	// Training overrides the classifier seed corpus; nil uses the default.
	Training []intent.TrainingExample

	Logger *logrus.Logger
}

// New builds the full pipeline: normalizer, intent classifier, feature
// extractor and dispatcher. A classifier that cannot be trained aborts
// construction. Everything the pipeline shares across calls is read-only
// after this point except the feature history, which is guarded internally.
func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	classifier, err := intent.New(&intent.Config{
		Training: cfg.Training,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("building classifier: %w", err)
	}

	dispatcher, err := dispatch.New(&dispatch.Config{
		Session:     cfg.Session,
		Synthesizer: cfg.Synthesizer,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("building dispatcher: %w", err)
	}

	return &assistantImpl{
		normalizer: normalizer.New(),
		classifier: classifier,
		extractor:  features.New(),
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// Process runs one utterance through normalization, classification,
// parameter extraction and feature extraction. Per-turn state lives only in
// the returned command.
func (a *assistantImpl) Process(utterance string) intent.Command {
	command := a.classifier.Classify(utterance)

	cleaned := a.normalizer.Normalize(utterance)
	command.Features = a.extractor.Extract(cleaned, nil)

	a.logger.WithFields(logrus.Fields{
		"label":      command.Label,
		"confidence": fmt.Sprintf("%.2f", command.Confidence),
		"words":      command.Features.WordCount,
	}).Info("processed utterance")

	return command
}

// Execute dispatches a classified command and returns the response text.
func (a *assistantImpl) Execute(command intent.Command) string {
	return a.dispatcher.Execute(command)
}
