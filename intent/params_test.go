package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractParametersTopic(t *testing.T) {
	t.Run("topic after preposition", func(t *testing.T) {
		params := ExtractParameters("prepare questions on machine learning", LabelPrepareQuestions)
		assert.Equal(t, map[string]string{"topic": "machine learning"}, params)
	})

	t.Run("other prepositions", func(t *testing.T) {
		assert.Equal(t, "data science",
			ExtractParameters("create interview questions about data science", LabelPrepareQuestions)["topic"])
		assert.Equal(t, "frontend",
			ExtractParameters("ask questions for frontend", LabelPrepareQuestions)["topic"])
	})

	t.Run("no preposition omits the key", func(t *testing.T) {
		params := ExtractParameters("prepare some questions", LabelPrepareQuestions)
		_, ok := params["topic"]
		assert.False(t, ok)
	})
}

func TestExtractParametersInterviewType(t *testing.T) {
	assert.Equal(t, map[string]string{"type": "technical"},
		ExtractParameters("start a technical interview", LabelStartInterview))
	assert.Equal(t, map[string]string{"type": "behavioral"},
		ExtractParameters("start a behavioral interview", LabelStartInterview))
	assert.Empty(t, ExtractParameters("start interview", LabelStartInterview))
}

func TestExtractParametersOtherLabels(t *testing.T) {
	for _, label := range []Label{LabelNextQuestion, LabelRepeatQuestion, LabelEvaluateAnswer,
		LabelEndInterview, LabelHelp, LabelUnknown} {
		assert.Empty(t, ExtractParameters("prepare questions on python", label))
	}
}
