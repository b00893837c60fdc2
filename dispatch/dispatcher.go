package dispatch

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"interview-voice-assistant/intent"
)

const (
	responseNotAvailable = "Interview system not available. Please initialize it first."

	responseStart = "Starting the interview. Please wait while I prepare your first question."

	responseEnd = "Ending the interview. Generating your final report now."

	responseEvaluate = "Please provide your answer first, then I can evaluate it for you."

	responseNoQuestion = "No current question available. Please start the interview first."

	responseUnknown = "I didn't understand that command. Please try again or say 'help' for available commands."

	responseHelp = `Available voice commands:
- say 'start interview' to begin a new interview
- say 'next question' to get the next question
- say 'repeat question' to hear the current question again
- say 'evaluate answer' to get feedback on your answer
- say 'prepare questions on <topic>' to generate questions for a topic
- say 'end interview' to finish and get your report
- say 'help' to hear this list again`
)

type dispatcherImpl struct {
	session     Session
	synthesizer Synthesizer
	logger      *logrus.Logger
}

type Config struct {
	// Session may be nil; session-requiring commands then degrade to a fixed
	// "not available" response.
	Session Session

	// Synthesizer may be nil to disable spoken responses.
	Synthesizer Synthesizer

	Logger *logrus.Logger
}

func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &dispatcherImpl{
		session:     cfg.Session,
		synthesizer: cfg.Synthesizer,
		logger:      logger,
	}, nil
}

// Execute maps a classified command to an action against the interview
// session and returns the textual response. Every label of the closed set is
// handled explicitly; collaborator failures degrade to an error-describing
// response rather than propagating.
func (d *dispatcherImpl) Execute(command intent.Command) string {
	var response string

	switch command.Label {
	case intent.LabelStartInterview:
		response = d.handleStart()
	case intent.LabelNextQuestion:
		response = d.handleNextQuestion()
	case intent.LabelRepeatQuestion:
		response = d.handleRepeatQuestion()
	case intent.LabelEvaluateAnswer:
		response = responseEvaluate
	case intent.LabelEndInterview:
		response = d.handleEnd()
	case intent.LabelHelp:
		response = responseHelp
	case intent.LabelPrepareQuestions:
		response = d.handlePrepareQuestions(command)
	case intent.LabelUnknown:
		response = responseUnknown
	default:
		// labels are coerced at classification time, but guard anyway
		response = responseUnknown
	}

	d.speak(response)

	return response
}

func (d *dispatcherImpl) handleStart() string {
	if d.session == nil {
		return responseNotAvailable
	}

	return responseStart
}

func (d *dispatcherImpl) handleNextQuestion() string {
	if d.session == nil {
		return responseNotAvailable
	}

	question, err := d.session.NextQuestion()
	if err != nil {
		d.logger.WithError(err).Warn("fetching next question")

		return fmt.Sprintf("I couldn't get the next question: %v", err)
	}

	return fmt.Sprintf("Here's your next question: %s", question)
}

func (d *dispatcherImpl) handleRepeatQuestion() string {
	if d.session == nil {
		return responseNotAvailable
	}

	question, ok := d.session.CurrentQuestion()
	if !ok {
		return responseNoQuestion
	}

	return fmt.Sprintf("Let me repeat the question: %s", question)
}

func (d *dispatcherImpl) handleEnd() string {
	if d.session == nil {
		return responseNotAvailable
	}

	if err := d.session.End(); err != nil {
		d.logger.WithError(err).Warn("ending interview")

		return fmt.Sprintf("I couldn't end the interview: %v", err)
	}

	return responseEnd
}

func (d *dispatcherImpl) handlePrepareQuestions(command intent.Command) string {
	if d.session == nil {
		return responseNotAvailable
	}

	// fall back to the raw utterance when no topic phrase was extracted
	topic := command.Parameters["topic"]
	if topic == "" {
		topic = command.RawText
	}

	questions, err := d.session.GenerateQuestions(topic, 5)
	if err != nil {
		d.logger.WithError(err).WithField("topic", topic).Warn("generating questions")

		return fmt.Sprintf("Error preparing questions: %v", err)
	}

	if len(questions) == 0 {
		return "I couldn't generate questions right now. Please try again."
	}

	d.speak(fmt.Sprintf("First question: %s", questions[0]))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Prepared questions for '%s':", topic)
	for i, question := range questions {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, question)
	}

	return sb.String()
}

func (d *dispatcherImpl) speak(text string) {
	if d.synthesizer != nil {
		d.synthesizer.Say(text)
	}
}
