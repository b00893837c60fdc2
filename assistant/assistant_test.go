package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-voice-assistant/intent"
)

type fakeSession struct {
	questions []string
	idx       int
	current   string
	generated []string
}

func (f *fakeSession) NextQuestion() (string, error) {
	f.current = f.questions[f.idx%len(f.questions)]
	f.idx++
	return f.current, nil
}

func (f *fakeSession) CurrentQuestion() (string, bool) {
	return f.current, f.current != ""
}

func (f *fakeSession) End() error {
	return nil
}

func (f *fakeSession) GenerateQuestions(topic string, count int) ([]string, error) {
	return f.generated, nil
}

func newTestAssistant(t *testing.T) Interface {
	t.Helper()

	a, err := New(&Config{
		Session: &fakeSession{
			questions: []string{"What is a goroutine?"},
			generated: []string{"Explain gradient descent."},
		},
	})
	require.NoError(t, err)

	return a
}

func TestProcessFillsCommand(t *testing.T) {
	a := newTestAssistant(t)

	command := a.Process("um, start interview please")

	assert.Equal(t, intent.LabelStartInterview, command.Label)
	assert.Greater(t, command.Confidence, 0.0)
	assert.Equal(t, "um, start interview please", command.RawText)
	assert.Equal(t, []string{"start", "interview"}, command.Features.Keywords)
	assert.False(t, command.Features.CapturedAt.IsZero())
}

func TestProcessThenExecute(t *testing.T) {
	a := newTestAssistant(t)

	t.Run("full turn for each command", func(t *testing.T) {
		cases := []struct {
			utterance string
			contains  string
		}{
			{"start interview", "Starting the interview"},
			{"next question please", "What is a goroutine?"},
			{"repeat the question", "What is a goroutine?"},
			{"evaluate my answer", "provide your answer first"},
			{"prepare questions on machine learning", "Explain gradient descent."},
			{"end interview", "Ending the interview"},
			{"help", "Available voice commands"},
			{"good morning", "didn't understand"},
		}

		for _, tc := range cases {
			command := a.Process(tc.utterance)
			response := a.Execute(command)

			assert.Containsf(t, response, tc.contains, "utterance %q classified %s", tc.utterance, command.Label)
		}
	})
}

func TestRepeatBeforeAnyQuestion(t *testing.T) {
	a, err := New(&Config{Session: &fakeSession{questions: []string{"Q"}}})
	require.NoError(t, err)

	command := a.Process("repeat the question")
	response := a.Execute(command)

	assert.Contains(t, response, "No current question available")
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
