package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-voice-assistant/intent"
)

type fakeSession struct {
	next        string
	nextErr     error
	current     string
	hasCurrent  bool
	endErr      error
	generated   []string
	generateErr error
	gotTopic    string
	gotCount    int
	ended       bool
}

func (f *fakeSession) NextQuestion() (string, error) {
	return f.next, f.nextErr
}

func (f *fakeSession) CurrentQuestion() (string, bool) {
	return f.current, f.hasCurrent
}

func (f *fakeSession) End() error {
	f.ended = true
	return f.endErr
}

func (f *fakeSession) GenerateQuestions(topic string, count int) ([]string, error) {
	f.gotTopic = topic
	f.gotCount = count
	return f.generated, f.generateErr
}

type fakeSynthesizer struct {
	spoken []string
}

func (f *fakeSynthesizer) Say(text string) {
	f.spoken = append(f.spoken, text)
}

func newTestDispatcher(t *testing.T, session Session, synth Synthesizer) Interface {
	t.Helper()

	d, err := New(&Config{Session: session, Synthesizer: synth})
	require.NoError(t, err)

	return d
}

func command(label intent.Label) intent.Command {
	return intent.Command{Label: label, Parameters: map[string]string{}}
}

func TestExecuteWithoutSession(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	for _, label := range []intent.Label{intent.LabelStartInterview, intent.LabelNextQuestion,
		intent.LabelRepeatQuestion, intent.LabelEndInterview, intent.LabelPrepareQuestions} {
		assert.Equal(t, responseNotAvailable, d.Execute(command(label)))
	}

	t.Run("help and unknown never need a session", func(t *testing.T) {
		assert.Contains(t, d.Execute(command(intent.LabelHelp)), "start interview")
		assert.Equal(t, responseUnknown, d.Execute(command(intent.LabelUnknown)))
		assert.Equal(t, responseEvaluate, d.Execute(command(intent.LabelEvaluateAnswer)))
	})
}

func TestExecuteNextQuestion(t *testing.T) {
	t.Run("embeds the new question", func(t *testing.T) {
		session := &fakeSession{next: "What is a goroutine?"}
		d := newTestDispatcher(t, session, nil)

		assert.Equal(t, "Here's your next question: What is a goroutine?",
			d.Execute(command(intent.LabelNextQuestion)))
	})

	t.Run("session failure degrades to a message", func(t *testing.T) {
		session := &fakeSession{nextErr: errors.New("generator offline")}
		d := newTestDispatcher(t, session, nil)

		response := d.Execute(command(intent.LabelNextQuestion))
		assert.Contains(t, response, "generator offline")
	})
}

func TestExecuteRepeatQuestion(t *testing.T) {
	t.Run("repeats the current question", func(t *testing.T) {
		session := &fakeSession{current: "Explain channels.", hasCurrent: true}
		d := newTestDispatcher(t, session, nil)

		assert.Equal(t, "Let me repeat the question: Explain channels.",
			d.Execute(command(intent.LabelRepeatQuestion)))
	})

	t.Run("no question yet", func(t *testing.T) {
		d := newTestDispatcher(t, &fakeSession{}, nil)

		assert.Equal(t, responseNoQuestion, d.Execute(command(intent.LabelRepeatQuestion)))
	})
}

func TestExecuteEndInterview(t *testing.T) {
	session := &fakeSession{}
	d := newTestDispatcher(t, session, nil)

	assert.Equal(t, responseEnd, d.Execute(command(intent.LabelEndInterview)))
	assert.True(t, session.ended)
}

func TestExecutePrepareQuestions(t *testing.T) {
	t.Run("numbered list with extracted topic", func(t *testing.T) {
		session := &fakeSession{generated: []string{"Q one", "Q two"}}
		d := newTestDispatcher(t, session, nil)

		cmd := command(intent.LabelPrepareQuestions)
		cmd.Parameters["topic"] = "machine learning"

		response := d.Execute(cmd)
		assert.Contains(t, response, "Prepared questions for 'machine learning':")
		assert.Contains(t, response, "1. Q one")
		assert.Contains(t, response, "2. Q two")
		assert.Equal(t, "machine learning", session.gotTopic)
		assert.Equal(t, 5, session.gotCount)
	})

	t.Run("falls back to the raw utterance as topic", func(t *testing.T) {
		session := &fakeSession{generated: []string{"Q"}}
		d := newTestDispatcher(t, session, nil)

		cmd := command(intent.LabelPrepareQuestions)
		cmd.RawText = "prepare some questions"

		d.Execute(cmd)
		assert.Equal(t, "prepare some questions", session.gotTopic)
	})

	t.Run("empty generation yields an apology", func(t *testing.T) {
		d := newTestDispatcher(t, &fakeSession{}, nil)

		response := d.Execute(command(intent.LabelPrepareQuestions))
		assert.Contains(t, response, "couldn't generate questions")
	})

	t.Run("generator failure degrades to a message", func(t *testing.T) {
		session := &fakeSession{generateErr: errors.New("service down")}
		d := newTestDispatcher(t, session, nil)

		response := d.Execute(command(intent.LabelPrepareQuestions))
		assert.Contains(t, response, "Error preparing questions")
		assert.Contains(t, response, "service down")
	})
}

func TestExecuteSpeaksResponses(t *testing.T) {
	synth := &fakeSynthesizer{}
	session := &fakeSession{generated: []string{"Q one"}}
	d := newTestDispatcher(t, session, synth)

	d.Execute(command(intent.LabelStartInterview))
	require.Len(t, synth.spoken, 1)
	assert.Equal(t, responseStart, synth.spoken[0])

	// prepare speaks the first question before the full response
	d.Execute(command(intent.LabelPrepareQuestions))
	require.Len(t, synth.spoken, 3)
	assert.Equal(t, "First question: Q one", synth.spoken[1])
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
