package intent

import "interview-voice-assistant/features"

// Label is one of the fixed interview-control commands. The set is closed;
// anything the model emits outside it is coerced to LabelUnknown.
type Label string

const (
	LabelStartInterview   Label = "start_interview"
	LabelNextQuestion     Label = "next_question"
	LabelRepeatQuestion   Label = "repeat_question"
	LabelEvaluateAnswer   Label = "evaluate_answer"
	LabelEndInterview     Label = "end_interview"
	LabelHelp             Label = "help"
	LabelPrepareQuestions Label = "prepare_questions"
	LabelUnknown          Label = "unknown"
)

// Labels lists every recognized label in a stable order.
func Labels() []Label {
	return []Label{
		LabelStartInterview,
		LabelNextQuestion,
		LabelRepeatQuestion,
		LabelEvaluateAnswer,
		LabelEndInterview,
		LabelHelp,
		LabelPrepareQuestions,
		LabelUnknown,
	}
}

// ParseLabel coerces an arbitrary string to a recognized Label. Unrecognized
// values map to LabelUnknown so label drift between the model and the
// dispatcher cannot leak out of the classifier.
func ParseLabel(s string) Label {
	for _, l := range Labels() {
		if string(l) == s {
			return l
		}
	}

	return LabelUnknown
}

// Command is one classified utterance: the chosen label, the model's
// posterior confidence for it, the raw utterance, extracted parameters and
// (filled by the caller) the feature set. Read-only once built.
type Command struct {
	Label      Label
	Confidence float64
	RawText    string
	Parameters map[string]string
	Features   features.Set
}

// TrainingExample pairs one seed phrase with its label.
type TrainingExample struct {
	Text  string
	Label Label
}
