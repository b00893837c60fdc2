package question_gen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate_questions", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "machine learning", req.Topic)
		assert.Equal(t, 5, req.Count)

		json.NewEncoder(w).Encode(generateResponse{Questions: []string{"Q1", "Q2"}})
	}))
	defer server.Close()

	client, err := NewClient(&Config{ApiHost: server.URL})
	require.NoError(t, err)

	questions, err := client.GenerateQuestions(context.Background(), "machine learning", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, questions)
}

func TestGenerateQuestionsRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}

		json.NewEncoder(w).Encode(generateResponse{Questions: []string{"Q1"}})
	}))
	defer server.Close()

	client, err := NewClient(&Config{ApiHost: server.URL})
	require.NoError(t, err)

	questions, err := client.GenerateQuestions(context.Background(), "go", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1"}, questions)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerateQuestionsClientErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad topic", http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := NewClient(&Config{ApiHost: server.URL})
	require.NoError(t, err)

	_, err = client.GenerateQuestions(context.Background(), "", 5)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(nil)
	assert.Error(t, err)

	_, err = NewClient(&Config{})
	assert.Error(t, err)
}
