package question_gen

import "context"

// API is the question-generation service contract. Implementations wrap the
// LLM service that writes interview questions for a topic.
type API interface {
	GenerateQuestions(ctx context.Context, topic string, count int) ([]string, error)
}
