package speech_synthesis

import (
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

const (
	defaultCommand   = "espeak-ng"
	defaultQueueSize = 8
)

// synthImpl speaks through an external TTS engine binary. A single worker
// goroutine drains the queue, serializing playback; Say never blocks.
type synthImpl struct {
	command string
	args    []string
	queue   chan string
	done    chan struct{}
	logger  *logrus.Logger
}

type Config struct {
	// Command is the TTS engine binary, espeak-ng by default. Args are
	// prepended before the text argument.
	Command string
	Args    []string

	QueueSize int

	Logger *logrus.Logger
}

func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	command := cfg.Command
	if command == "" {
		command = defaultCommand
	}

	queueSize := cfg.QueueSize
	if queueSize == 0 {
		queueSize = defaultQueueSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	s := &synthImpl{
		command: command,
		args:    cfg.Args,
		queue:   make(chan string, queueSize),
		done:    make(chan struct{}),
		logger:  logger,
	}

	go s.worker()

	return s, nil
}

func (s *synthImpl) Say(text string) {
	if text == "" {
		return
	}

	select {
	case s.queue <- text:
	default:
		s.logger.Warn("speech queue full, dropping phrase")
	}
}

func (s *synthImpl) Close() {
	close(s.queue)
	<-s.done
}

func (s *synthImpl) worker() {
	defer close(s.done)

	for text := range s.queue {
		args := append(append([]string{}, s.args...), text)

		if err := exec.Command(s.command, args...).Run(); err != nil {
			s.logger.WithError(err).Warn("speech synthesis failed")
		}
	}
}
