package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"interview-voice-assistant/clients/question_gen"
)

// defaultQuestions keeps the session usable when no question-generation
// service is configured.
var defaultQuestions = []string{
	"Tell me about yourself and your background.",
	"Describe a challenging project you worked on recently.",
	"How do you approach debugging a problem you have never seen before?",
	"What would you improve about the last system you built?",
	"Where do you want to grow in the next few years?",
}

var ErrEnded = errors.New("interview has ended")

// Session is the interview-control collaborator driven by the command
// dispatcher. Both the foreground request path and the background listening
// loop call in, so all state is guarded by one mutex.
type Session struct {
	id        uuid.UUID
	role      string
	generator question_gen.API
	timeout   time.Duration
	logger    *logrus.Logger

	mu       sync.Mutex
	upcoming []string
	current  string
	asked    int
	ended    bool
}

type Config struct {
	// Role seeds topic-less question generation.
	Role string

	// Generator may be nil; the session then serves the built-in question
	// set and reports failure for topic generation.
	Generator question_gen.API

	// GenerateTimeout bounds one generation call. Defaults to 30s.
	GenerateTimeout time.Duration

	Logger *logrus.Logger
}

func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	timeout := cfg.GenerateTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	role := cfg.Role
	if role == "" {
		role = "software engineer"
	}

	session := &Session{
		id:        uuid.New(),
		role:      role,
		generator: cfg.Generator,
		timeout:   timeout,
		logger:    logger,
		upcoming:  append([]string{}, defaultQuestions...),
	}

	logger.WithFields(logrus.Fields{
		"session_id": session.id,
		"role":       role,
	}).Info("interview session created")

	return session, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// NextQuestion advances to the next question, refilling from the generator
// when the prepared list runs out.
func (s *Session) NextQuestion() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return "", ErrEnded
	}

	if len(s.upcoming) == 0 {
		questions, err := s.generate(s.role, 5)
		if err != nil {
			return "", err
		}

		s.upcoming = questions
	}

	s.current = s.upcoming[0]
	s.upcoming = s.upcoming[1:]
	s.asked++

	return s.current, nil
}

// CurrentQuestion returns the question most recently asked, if any.
func (s *Session) CurrentQuestion() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		return "", false
	}

	return s.current, true
}

// End closes the session. Further question requests fail with ErrEnded.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return ErrEnded
	}

	s.ended = true

	s.logger.WithFields(logrus.Fields{
		"session_id": s.id,
		"asked":      s.asked,
	}).Info("interview session ended")

	return nil
}

// GenerateQuestions fetches topic questions from the generation service and
// queues them as the upcoming questions.
func (s *Session) GenerateQuestions(topic string, count int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, ErrEnded
	}

	questions, err := s.generate(topic, count)
	if err != nil {
		return nil, err
	}

	s.upcoming = append([]string{}, questions...)

	return questions, nil
}

func (s *Session) generate(topic string, count int) ([]string, error) {
	if s.generator == nil {
		return nil, errors.New("no question generator configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	questions, err := s.generator.GenerateQuestions(ctx, topic, count)
	if err != nil {
		return nil, fmt.Errorf("generating questions for %q: %w", topic, err)
	}

	return questions, nil
}
