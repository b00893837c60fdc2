package question_gen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxRetries = 2
	retryBaseDelay    = 250 * time.Millisecond
)

type clientImpl struct {
	apiHost    string
	httpClient *http.Client
	maxRetries uint64
	logger     *logrus.Logger
}

type Config struct {
	ApiHost string

	// Timeout bounds one HTTP attempt; retries use exponential backoff on
	// network errors and 5xx responses.
	Timeout    time.Duration
	MaxRetries uint64

	Logger *logrus.Logger
}

func NewClient(cfg *Config) (API, error) {
	if cfg == nil {
		return nil, errors.New("missing parameter: cfg")
	}

	if cfg.ApiHost == "" {
		return nil, errors.New("missing parameter: cfg.ApiHost")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &clientImpl{
		apiHost:    cfg.ApiHost,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

type generateRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type generateResponse struct {
	Questions []string `json:"questions"`
}

func (client *clientImpl) GenerateQuestions(ctx context.Context, topic string, count int) ([]string, error) {
	payload, err := json.Marshal(generateRequest{Topic: topic, Count: count})
	if err != nil {
		return nil, err
	}

	var questions []string

	backoff := retry.WithMaxRetries(client.maxRetries, retry.NewExponential(retryBaseDelay))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			client.apiHost+"/generate_questions", bytes.NewReader(payload))
		if err != nil {
			return err
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := client.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}

		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(resp.Body)
			client.logger.WithField("status", resp.Status).Warn("question service error, retrying")

			return retry.RetryableError(fmt.Errorf("question service %s: %s", resp.Status, string(body)))
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)

			return fmt.Errorf("question service %s: %s", resp.Status, string(body))
		}

		var out generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}

		questions = out.Questions

		return nil
	})
	if err != nil {
		return nil, err
	}

	return questions, nil
}
