package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := New()

	t.Run("strips fillers, punctuation and extra whitespace", func(t *testing.T) {
		assert.Equal(t, "start interview please", n.Normalize("um, start interview please"))
		assert.Equal(t, "next question", n.Normalize("uh, next question, you know"))
		assert.Equal(t, "repeat the question", n.Normalize("repeat the question, basically"))
	})

	t.Run("lower-cases and trims", func(t *testing.T) {
		assert.Equal(t, "end interview now", n.Normalize("  End Interview NOW!  "))
	})

	t.Run("empty and filler-only inputs yield empty output", func(t *testing.T) {
		assert.Equal(t, "", n.Normalize(""))
		assert.Equal(t, "", n.Normalize("um, uh... like"))
	})

	t.Run("deterministic", func(t *testing.T) {
		in := "uh, evaluate my answer, like, how did I do?"
		assert.Equal(t, n.Normalize(in), n.Normalize(in))
	})
}

func TestExtractKeywords(t *testing.T) {
	n := New()

	t.Run("keeps vocabulary words in input order", func(t *testing.T) {
		assert.Equal(t, []string{"start", "interview"}, n.ExtractKeywords("um, start interview please"))
		assert.Equal(t, []string{"questions", "python"}, n.ExtractKeywords("prepare questions on python"))
	})

	t.Run("preserves duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"next", "question", "next"}, n.ExtractKeywords("next question next please"))
	})

	t.Run("no vocabulary words yields empty slice", func(t *testing.T) {
		assert.Empty(t, n.ExtractKeywords("hello there, good morning"))
	})
}
